package internal

import (
	"strings"
)

// Attr is a single parsed attribute. HasValue is false for bare flags.
type Attr struct {
	Key      string
	Value    string
	HasValue bool
}

// attrParser walks raw attribute text one byte at a time.
// All delimiters are ASCII, so byte positions never split a UTF-8 sequence
// that matters to the grammar.
type attrParser struct {
	source string
	pos    int
}

// ParseAttrs converts the raw text between a tag name and its closing
// bracket into an ordered attribute list. It never fails: stray '=' and
// unterminated quotes are recovered from on a best-effort basis.
// Empty or whitespace-only text yields an empty, non-nil slice.
func ParseAttrs(text string) []Attr {
	p := &attrParser{source: text}
	attrs := make([]Attr, 0)

	for {
		p.skipWhitespace()
		if p.isAtEnd() {
			break
		}
		if attr, ok := p.scanAttr(); ok {
			attrs = append(attrs, attr)
		}
	}

	return attrs
}

// scanAttr scans one token. It always consumes at least one byte.
func (p *attrParser) scanAttr() (Attr, bool) {
	ch := p.peek()

	// Stray '=' with no key: drop whatever value follows it
	if ch == CharEquals {
		p.advance()
		p.skipWhitespace()
		p.scanValue()
		return Attr{}, false
	}

	// Quoted bare token, e.g. [video "autoplay"]
	if isQuote(ch) {
		key := p.scanQuoted()
		if key == StringValueEmpty {
			return Attr{}, false
		}
		return Attr{Key: key}, true
	}

	key := p.scanKey()

	// Look past whitespace for '='; without one the key is a flag
	save := p.pos
	p.skipWhitespace()
	if p.isAtEnd() || p.peek() != CharEquals {
		p.pos = save
		return Attr{Key: key}, true
	}
	p.advance() // consume '='
	p.skipWhitespace()

	return Attr{Key: key, Value: p.scanValue(), HasValue: true}, true
}

// scanKey scans up to the next whitespace or '='
func (p *attrParser) scanKey() string {
	start := p.pos
	for !p.isAtEnd() {
		ch := p.peek()
		if isSpace(ch) || ch == CharEquals {
			break
		}
		p.advance()
	}
	return p.source[start:p.pos]
}

// scanValue scans a quoted or unquoted value
func (p *attrParser) scanValue() string {
	if p.isAtEnd() {
		return StringValueEmpty
	}
	if isQuote(p.peek()) {
		return p.scanQuoted()
	}

	start := p.pos
	for !p.isAtEnd() && !isSpace(p.peek()) {
		p.advance()
	}
	return p.source[start:p.pos]
}

// scanQuoted scans a quoted run. There is no escape processing: the value
// ends at the next matching quote. An unterminated quote runs to the end of
// the text.
func (p *attrParser) scanQuoted() string {
	quote := p.advance()
	start := p.pos

	end := strings.IndexByte(p.source[start:], quote)
	if end < 0 {
		p.pos = len(p.source)
		return strings.TrimRight(p.source[start:], whitespaceChars)
	}

	p.pos = start + end + 1
	return p.source[start : start+end]
}

func (p *attrParser) isAtEnd() bool {
	return p.pos >= len(p.source)
}

func (p *attrParser) peek() byte {
	if p.isAtEnd() {
		return 0
	}
	return p.source[p.pos]
}

func (p *attrParser) advance() byte {
	if p.isAtEnd() {
		return 0
	}
	ch := p.source[p.pos]
	p.pos++
	return ch
}

func (p *attrParser) skipWhitespace() {
	for !p.isAtEnd() && isSpace(p.peek()) {
		p.pos++
	}
}

// whitespaceChars lists the bytes isSpace accepts
const whitespaceChars = " \t\n\r\f\v"

func isSpace(ch byte) bool {
	return ch == CharSpace || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isQuote(ch byte) bool {
	return ch == CharDoubleQuote || ch == CharSingleQuote
}
