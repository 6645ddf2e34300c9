package shortcode

import (
	"strings"

	"github.com/itsatony/go-shortcode/internal"
)

// Attr is a single parsed attribute. A bare flag such as "loop" in
// [audio loop] has HasValue false and an empty Value.
type Attr = internal.Attr

// Attributes is the optional, ordered attribute list of a shortcode.
// The zero value is absent. Duplicate keys are kept in document order.
type Attributes struct {
	list    []Attr
	present bool
}

// NewAttributes creates present attributes holding attrs in order.
func NewAttributes(attrs ...Attr) Attributes {
	list := make([]Attr, len(attrs))
	copy(list, attrs)
	return Attributes{list: list, present: true}
}

// ParseAttributes parses raw attribute text such as `class="audio" loop`.
// The result is always present, even for empty text.
func ParseAttributes(text string) Attributes {
	return Attributes{list: internal.ParseAttrs(text), present: true}
}

// Present reports whether the tag had attribute text at all.
// [audio] has absent attributes; [audio /] has present but empty ones.
func (a Attributes) Present() bool {
	return a.present
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.list)
}

// All returns a copy of the attributes in document order.
func (a Attributes) All() []Attr {
	if !a.present {
		return nil
	}
	out := make([]Attr, len(a.list))
	copy(out, a.list)
	return out
}

// Keys returns attribute keys in document order, duplicates included.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a.list))
	for _, attr := range a.list {
		keys = append(keys, attr.Key)
	}
	return keys
}

// Has reports whether an attribute with the given key exists.
func (a Attributes) Has(key string) bool {
	_, ok := a.find(key)
	return ok
}

// Get returns the value of the first attribute with the given key.
// Flags return an empty value and true.
func (a Attributes) Get(key string) (string, bool) {
	attr, ok := a.find(key)
	if !ok {
		return "", false
	}
	return attr.Value, true
}

// GetDefault returns the value for key, or def when the key is missing.
func (a Attributes) GetDefault(key, def string) string {
	if v, ok := a.Get(key); ok {
		return v
	}
	return def
}

// IsFlag reports whether key is present as a bare flag.
func (a Attributes) IsFlag(key string) bool {
	attr, ok := a.find(key)
	return ok && !attr.HasValue
}

// Map returns the attributes as a map. When a key repeats, the last
// occurrence wins.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a.list))
	for _, attr := range a.list {
		m[attr.Key] = attr.Value
	}
	return m
}

// String renders the attributes back to tag syntax: key="value" pairs and
// bare flags, space separated, in document order. Values that contain a
// double quote are single-quoted.
//
// Tag syntax has no quote escaping, so a value holding both ' and " is
// written single-quoted as is and will not parse back to the same value.
// Any value with at most one kind of quote round-trips through
// ParseAttributes.
func (a Attributes) String() string {
	var sb strings.Builder
	for i, attr := range a.list {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(attr.Key)
		if !attr.HasValue {
			continue
		}
		quote := `"`
		if strings.Contains(attr.Value, `"`) {
			quote = "'"
		}
		sb.WriteString("=")
		sb.WriteString(quote)
		sb.WriteString(attr.Value)
		sb.WriteString(quote)
	}
	return sb.String()
}

func (a Attributes) find(key string) (Attr, bool) {
	for _, attr := range a.list {
		if attr.Key == key {
			return attr, true
		}
	}
	return Attr{}, false
}

// Content is the optional inner text of a paired shortcode.
// The zero value is absent, which is what self-closing tags receive.
type Content struct {
	text    string
	present bool
}

// NewContent creates present content.
func NewContent(text string) Content {
	return Content{text: text, present: true}
}

// Get returns the content and whether it is present.
func (c Content) Get() (string, bool) {
	return c.text, c.present
}

// Present reports whether the tag was paired.
func (c Content) Present() bool {
	return c.present
}

// String returns the content, or an empty string when absent.
func (c Content) String() string {
	return c.text
}
