package internal

import (
	"strings"
)

// Extraction is the result of matching an open tag to its close tag.
type Extraction struct {
	ContentStart int // Offset just past the open tag's ']'
	ContentEnd   int // Offset of the matching "[/name]"
	End          int // Offset just past the matching "[/name]"
}

// ExtractContent finds the "[/name]" matching an open tag whose head ends at
// from. Matching is depth-counted per tag name: every same-name open head
// found first must have its own close consumed. Heads of other names do not
// affect depth. When escapes is true, same-name heads written as "[[name]]"
// are literal and not counted.
func ExtractContent(doc, name string, from int, escapes bool) (Extraction, bool) {
	depth := 0

	for i := from; i < len(doc); {
		idx := strings.IndexByte(doc[i:], CharOpenBracket)
		if idx < 0 {
			break
		}
		i += idx

		if IsCloseTag(doc, i, name) {
			if depth == 0 {
				return Extraction{
					ContentStart: from,
					ContentEnd:   i,
					End:          i + CloseTagLen(name),
				}, true
			}
			depth--
			i += CloseTagLen(name)
			continue
		}

		if escapes && strings.HasPrefix(doc[i:], StrEscapeOpen) {
			head, ok := ScanHead(doc, i+1)
			if ok && head.Name == name && head.End < len(doc) && doc[head.End] == CharCloseBracket {
				i = head.End + 1
				continue
			}
			i++
			continue
		}

		if head, ok := ScanHead(doc, i); ok {
			if head.Name == name && !head.SelfClosing {
				depth++
			}
			i = head.End
			continue
		}

		i++
	}

	return Extraction{}, false
}

// PairIndex matches every open tag in a document to its close tag in one
// pass. Lookup agrees with ExtractContent for any open head's End offset.
type PairIndex struct {
	pairs map[string]map[int]int // name -> open head End -> close offset
}

// NewPairIndex indexes doc. escapes reports, per tag name, whether heads
// written as "[[name]]" are literal.
func NewPairIndex(doc string, escapes func(name string) bool) *PairIndex {
	idx := &PairIndex{pairs: make(map[string]map[int]int)}
	open := make(map[string][]int)

	for i := 0; i < len(doc); {
		rel := strings.IndexByte(doc[i:], CharOpenBracket)
		if rel < 0 {
			break
		}
		i += rel

		if name, ok := closeTagName(doc, i); ok {
			if stack := open[name]; len(stack) > 0 {
				idx.add(name, stack[len(stack)-1], i)
				open[name] = stack[:len(stack)-1]
			}
			i += CloseTagLen(name)
			continue
		}

		if strings.HasPrefix(doc[i:], StrEscapeOpen) {
			head, ok := ScanHead(doc, i+1)
			if ok && head.End < len(doc) && doc[head.End] == CharCloseBracket && escapes(head.Name) {
				i = head.End + 1
				continue
			}
			i++
			continue
		}

		if head, ok := ScanHead(doc, i); ok {
			if !head.SelfClosing {
				open[head.Name] = append(open[head.Name], head.End)
			}
			i = head.End
			continue
		}

		i++
	}

	return idx
}

// Lookup returns the close tag matching the open head of name ending at from
func (p *PairIndex) Lookup(name string, from int) (Extraction, bool) {
	closeAt, ok := p.pairs[name][from]
	if !ok {
		return Extraction{}, false
	}
	return Extraction{
		ContentStart: from,
		ContentEnd:   closeAt,
		End:          closeAt + CloseTagLen(name),
	}, true
}

func (p *PairIndex) add(name string, openEnd, closeAt int) {
	byEnd, ok := p.pairs[name]
	if !ok {
		byEnd = make(map[int]int)
		p.pairs[name] = byEnd
	}
	byEnd[openEnd] = closeAt
}

// closeTagName returns the name of a "[/name]" starting at pos
func closeTagName(doc string, pos int) (string, bool) {
	if !strings.HasPrefix(doc[pos:], StrCloseTagOpen) {
		return "", false
	}
	rest := doc[pos+len(StrCloseTagOpen):]
	end := strings.IndexByte(rest, CharCloseBracket)
	if end <= 0 || strings.IndexByte(rest[:end], CharOpenBracket) >= 0 {
		return "", false
	}
	return rest[:end], true
}
