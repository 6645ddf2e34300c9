package shortcode

import (
	"github.com/itsatony/go-shortcode/internal"
)

// Position is a location in a document. Line and Column are 1-based.
type Position = internal.Position

// Tag describes one top-level shortcode occurrence found by Scan.
type Tag struct {
	Name        string
	Raw         string     // Full matched text, including content and close tag
	Attributes  Attributes // Absent for escapes and tags without attribute text
	Content     Content    // Present only for paired tags
	SelfClosing bool
	Paired      bool
	Unclosed    bool // Tag: no close, resolved as standalone. Escape: no trailing ']'
	Escaped     bool // [[name]] escape
	Registered  bool // A handler exists for Name
	Start       int
	End         int
	Position    Position
}

// Scan reports the top-level shortcodes in document without rendering it.
// Nested tags inside paired content are not reported. Escapes are reported
// with Escaped set and no attributes or content.
func (s *Shortcode) Scan(document string) []Tag {
	matches := s.renderer.Scanner().All(document)
	tags := make([]Tag, 0, len(matches))

	for _, m := range matches {
		tag := Tag{
			Name:        m.Head.Name,
			Raw:         m.Raw(document),
			SelfClosing: m.Head.SelfClosing,
			Paired:      m.Paired,
			Unclosed:    m.Unclosed,
			Escaped:     m.Kind == internal.MatchEscape,
			Registered:  s.registry.Has(m.Head.Name),
			Start:       m.Start,
			End:         m.End,
			Position:    internal.PositionAt(document, m.Start),
		}
		if !tag.Escaped {
			if m.Head.HasAttrs {
				tag.Attributes = ParseAttributes(m.Head.AttrText)
			}
			if m.Paired {
				tag.Content = NewContent(m.Content(document))
			}
		}
		tags = append(tags, tag)
	}

	return tags
}
