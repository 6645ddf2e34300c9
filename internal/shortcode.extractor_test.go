package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContent_Found(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		tag      string
		from     int
		escapes  bool
		expected Extraction
	}{
		{
			name: "simple pair",
			doc:  "[a]hello[/a]",
			tag:  "a",
			from: 3,
			expected: Extraction{
				ContentStart: 3, ContentEnd: 8, End: 12,
			},
		},
		{
			name: "empty content",
			doc:  "[a][/a]",
			tag:  "a",
			from: 3,
			expected: Extraction{
				ContentStart: 3, ContentEnd: 3, End: 7,
			},
		},
		{
			name: "same-name nesting matches outer close",
			doc:  "[a][a]x[/a][/a]",
			tag:  "a",
			from: 3,
			expected: Extraction{
				ContentStart: 3, ContentEnd: 11, End: 15,
			},
		},
		{
			name: "self-closing same-name does not nest",
			doc:  "[a]1[a/]2[/a]",
			tag:  "a",
			from: 3,
			expected: Extraction{
				ContentStart: 3, ContentEnd: 9, End: 13,
			},
		},
		{
			name: "other names do not affect depth",
			doc:  "[a][b]x[/a][/b]",
			tag:  "a",
			from: 3,
			expected: Extraction{
				ContentStart: 3, ContentEnd: 7, End: 11,
			},
		},
		{
			name:    "escaped same-name head is literal",
			doc:     "[a][[a]][/a]",
			tag:     "a",
			from:    3,
			escapes: true,
			expected: Extraction{
				ContentStart: 3, ContentEnd: 8, End: 12,
			},
		},
		{
			name: "similar close names are not confused",
			doc:  "[a]x[/ab][/a]",
			tag:  "a",
			from: 3,
			expected: Extraction{
				ContentStart: 3, ContentEnd: 9, End: 13,
			},
		},
		{
			name: "attributes on nested open",
			doc:  `[a k="1"][a k="2"]x[/a]y[/a]`,
			tag:  "a",
			from: 9,
			expected: Extraction{
				ContentStart: 9, ContentEnd: 24, End: 28,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := ExtractContent(tt.doc, tt.tag, tt.from, tt.escapes)
			require.True(t, ok)
			assert.Equal(t, tt.expected, ext)
		})
	}
}

func TestExtractContent_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		tag     string
		from    int
		escapes bool
	}{
		{name: "no close at all", doc: "[a]x", tag: "a", from: 3},
		{name: "close for another name", doc: "[a]x[/b]", tag: "a", from: 3},
		{name: "nested open consumes the only close", doc: "[a]x[a]y[/a]", tag: "a", from: 3},
		{name: "escapes off counts double-bracket head", doc: "[a][[a]][/a]", tag: "a", from: 3},
		{name: "close is case-sensitive", doc: "[a]x[/A]", tag: "a", from: 3},
		{name: "from at end", doc: "[a]", tag: "a", from: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ExtractContent(tt.doc, tt.tag, tt.from, tt.escapes)
			assert.False(t, ok)
		})
	}
}

func TestPairIndex_AgreesWithExtractContent(t *testing.T) {
	docs := []string{
		"[a]hello[/a]",
		"[a][a]x[/a][/a]",
		"[a]x[a]y[/a]",
		"[a]1[a/]2[/a]",
		"[a][b]x[/a][/b]",
		"[a][[a]][/a]",
		"[a]x[/ab][/a]",
		`[a k="1"][a k="2"]x[/a]y[/a]`,
		"[[a]x[/a]] [a]y[/a]",
		"[b][a][/b][/a][b]",
		"see [1] and [2] and [1] then [/1]",
		"[a] [b] [c] [/a] [/c] [/b] [a]",
		"[/a] [a] [[a] [/a] [/a]",
		"[x [a]] [a]y[/a]",
	}

	for _, escapes := range []bool{false, true} {
		for _, doc := range docs {
			index := NewPairIndex(doc, func(string) bool { return escapes })
			for pos := 0; pos < len(doc); pos++ {
				head, ok := ScanHead(doc, pos)
				if !ok || head.SelfClosing {
					continue
				}
				// Heads inside "[[name]]" are consumed by the escape
				if escapes && pos > 0 && doc[pos-1] == CharOpenBracket &&
					head.End < len(doc) && doc[head.End] == CharCloseBracket {
					continue
				}
				want, wantOK := ExtractContent(doc, head.Name, head.End, escapes)
				got, gotOK := index.Lookup(head.Name, head.End)
				assert.Equal(t, wantOK, gotOK, "doc %q head at %d escapes=%v", doc, pos, escapes)
				assert.Equal(t, want, got, "doc %q head at %d escapes=%v", doc, pos, escapes)
			}
		}
	}
}

func TestPairIndex_Lookup(t *testing.T) {
	doc := "[a][b]x[/b][/a] [c]"
	index := NewPairIndex(doc, func(string) bool { return false })

	ext, ok := index.Lookup("a", 3)
	require.True(t, ok)
	assert.Equal(t, Extraction{ContentStart: 3, ContentEnd: 11, End: 15}, ext)

	ext, ok = index.Lookup("b", 6)
	require.True(t, ok)
	assert.Equal(t, Extraction{ContentStart: 6, ContentEnd: 7, End: 11}, ext)

	_, ok = index.Lookup("c", 19)
	assert.False(t, ok)

	_, ok = index.Lookup("a", 6)
	assert.False(t, ok)
}
