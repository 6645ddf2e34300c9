package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Attr
	}{
		{
			name:     "empty text",
			input:    "",
			expected: []Attr{},
		},
		{
			name:     "whitespace only",
			input:    "  \t ",
			expected: []Attr{},
		},
		{
			name:  "mixed quoted, flag and quoted",
			input: `class="audio" loop autoplay="true"`,
			expected: []Attr{
				{Key: "class", Value: "audio", HasValue: true},
				{Key: "loop"},
				{Key: "autoplay", Value: "true", HasValue: true},
			},
		},
		{
			name:  "unquoted values keep order",
			input: "k1=v1 k2=v2",
			expected: []Attr{
				{Key: "k1", Value: "v1", HasValue: true},
				{Key: "k2", Value: "v2", HasValue: true},
			},
		},
		{
			name:  "whitespace inside double quotes is literal",
			input: `name="hello world"`,
			expected: []Attr{
				{Key: "name", Value: "hello world", HasValue: true},
			},
		},
		{
			name:  "single quotes may contain double quotes",
			input: `code='<div class="something"></div>'`,
			expected: []Attr{
				{Key: "code", Value: `<div class="something"></div>`, HasValue: true},
			},
		},
		{
			name:  "whitespace around equals",
			input: `key = "v"`,
			expected: []Attr{
				{Key: "key", Value: "v", HasValue: true},
			},
		},
		{
			name:  "empty quoted value",
			input: `alt=""`,
			expected: []Attr{
				{Key: "alt", Value: "", HasValue: true},
			},
		},
		{
			name:  "equals at end of text",
			input: "k=",
			expected: []Attr{
				{Key: "k", Value: "", HasValue: true},
			},
		},
		{
			name:  "duplicate keys are kept in order",
			input: "a=1 a=2",
			expected: []Attr{
				{Key: "a", Value: "1", HasValue: true},
				{Key: "a", Value: "2", HasValue: true},
			},
		},
		{
			name:  "quoted bare token is a flag",
			input: `"autoplay" loop`,
			expected: []Attr{
				{Key: "autoplay"},
				{Key: "loop"},
			},
		},
		{
			name:  "token directly after closing quote",
			input: `x="a"b`,
			expected: []Attr{
				{Key: "x", Value: "a", HasValue: true},
				{Key: "b"},
			},
		},
		{
			name:  "multiline attributes",
			input: "a=\"1\"\n\tb='2'\r\n",
			expected: []Attr{
				{Key: "a", Value: "1", HasValue: true},
				{Key: "b", Value: "2", HasValue: true},
			},
		},
		{
			name:  "unicode values pass through",
			input: `title="héllo wörld" ü`,
			expected: []Attr{
				{Key: "title", Value: "héllo wörld", HasValue: true},
				{Key: "ü"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := ParseAttrs(tt.input)
			require.NotNil(t, attrs)
			assert.Equal(t, tt.expected, attrs)
		})
	}
}

func TestParseAttrs_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Attr
	}{
		{
			name:  "unterminated double quote runs to end",
			input: `a="unterminated value  `,
			expected: []Attr{
				{Key: "a", Value: "unterminated value", HasValue: true},
			},
		},
		{
			name:  "unterminated quote swallows later tokens",
			input: `a=1 b="two c=3`,
			expected: []Attr{
				{Key: "a", Value: "1", HasValue: true},
				{Key: "b", Value: "two c=3", HasValue: true},
			},
		},
		{
			name:  "stray equals drops its value",
			input: "= stray a=b",
			expected: []Attr{
				{Key: "a", Value: "b", HasValue: true},
			},
		},
		{
			name:     "lone equals",
			input:    "=",
			expected: []Attr{},
		},
		{
			name:     "empty quoted flag is dropped",
			input:    `""`,
			expected: []Attr{},
		},
		{
			name:  "unterminated quoted flag",
			input: `"open`,
			expected: []Attr{
				{Key: "open"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, ParseAttrs(tt.input))
			})
		})
	}
}
