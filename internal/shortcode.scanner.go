package internal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Position represents a location in the source document
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// PositionAt calculates the Position (line, column, offset) of offset in doc.
func PositionAt(doc string, offset int) Position {
	if offset > len(doc) {
		offset = len(doc)
	}
	pos := Position{
		Offset: offset,
		Line:   1,
		Column: 1,
	}

	for i := 0; i < offset; i++ {
		if doc[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}

// Head is a parsed tag head: the "[name attrs]" or "[name attrs /]" span.
type Head struct {
	Name        string
	AttrText    string // Raw text between the name and the terminator
	HasAttrs    bool   // AttrText is non-empty
	SelfClosing bool   // Terminated by "/]"
	Start       int    // Offset of '['
	End         int    // Offset just past ']'
}

// ScanHead parses a tag head starting exactly at pos, which must hold '['.
// It reports false when the bracket does not begin a syntactically valid
// tag head.
func ScanHead(doc string, pos int) (Head, bool) {
	if pos >= len(doc) || doc[pos] != CharOpenBracket {
		return Head{}, false
	}

	// Scan tag name
	nameStart := pos + 1
	nameEnd := nameStart
	for nameEnd < len(doc) {
		r, size := utf8.DecodeRuneInString(doc[nameEnd:])
		if !isNameRune(r) {
			break
		}
		nameEnd += size
	}
	if nameEnd == nameStart || nameEnd >= len(doc) {
		return Head{}, false
	}

	head := Head{
		Name:  doc[nameStart:nameEnd],
		Start: pos,
	}

	// The name must be followed by whitespace, "]" or "/]"
	switch ch := doc[nameEnd]; {
	case ch == CharCloseBracket:
		head.End = nameEnd + 1
		return head, true
	case ch == CharSlash:
		if !strings.HasPrefix(doc[nameEnd:], StrSelfClose) {
			return Head{}, false
		}
		head.SelfClosing = true
		head.End = nameEnd + len(StrSelfClose)
		return head, true
	case !isSpace(ch):
		return Head{}, false
	}

	// Attribute section runs to the first ']'; an intervening '[' means
	// this bracket was prose, not a tag
	rel := strings.IndexAny(doc[nameEnd:], "[]")
	if rel < 0 || doc[nameEnd+rel] == CharOpenBracket {
		return Head{}, false
	}
	closeAt := nameEnd + rel

	attrEnd := closeAt
	if doc[closeAt-1] == CharSlash {
		head.SelfClosing = true
		attrEnd--
	}

	head.AttrText = doc[nameEnd:attrEnd]
	head.HasAttrs = head.AttrText != StringValueEmpty
	head.End = closeAt + 1
	return head, true
}

// IsCloseTag reports whether doc holds "[/name]" at pos.
func IsCloseTag(doc string, pos int, name string) bool {
	rest := doc[pos:]
	if !strings.HasPrefix(rest, StrCloseTagOpen) {
		return false
	}
	rest = rest[len(StrCloseTagOpen):]
	return len(rest) > len(name) && strings.HasPrefix(rest, name) && rest[len(name)] == CharCloseBracket
}

// CloseTagLen returns the byte length of "[/name]".
func CloseTagLen(name string) int {
	return len(StrCloseTagOpen) + len(name) + 1
}

// MatchKind classifies a scan hit
type MatchKind int

// Match kind constants
const (
	MatchTag MatchKind = iota
	MatchEscape
)

// Match kind string names for debugging
const (
	MatchKindNameTag    = "TAG"
	MatchKindNameEscape = "ESCAPE"
)

// String returns the string representation of the match kind
func (k MatchKind) String() string {
	if k == MatchEscape {
		return MatchKindNameEscape
	}
	return MatchKindNameTag
}

// Match describes one scan hit. Start and End cover the full span,
// including content and close tag for paired tags and the escape brackets
// for escapes.
type Match struct {
	Kind         MatchKind
	Head         Head
	Paired       bool // A matching [/name] was found
	Unclosed     bool // Tag: no close exists. Escape: no trailing ']'.
	ContentStart int
	ContentEnd   int
	Start        int
	End          int
}

// Raw returns the matched source text
func (m Match) Raw(doc string) string {
	return doc[m.Start:m.End]
}

// Content returns the inner content of a paired match
func (m Match) Content(doc string) string {
	if !m.Paired {
		return StringValueEmpty
	}
	return doc[m.ContentStart:m.ContentEnd]
}

// Literal returns the text an escape stands for: the span without its
// escape brackets.
func (m Match) Literal(doc string) string {
	if m.Unclosed {
		return doc[m.Start+1 : m.End]
	}
	return doc[m.Start+1 : m.End-1]
}

// ScannerConfig holds scanner configuration
type ScannerConfig struct {
	Escapes  bool           // Recognize [[tag]] escapes
	Unclosed UnclosedPolicy // Treatment of open tags without a close
}

// DefaultScannerConfig returns the default scanner configuration
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		Escapes:  true,
		Unclosed: UnclosedStandalone,
	}
}

// Scanner locates shortcode matches in a document, left to right.
type Scanner struct {
	config ScannerConfig
	known  func(name string) bool
	logger *zap.Logger
}

// NewScanner creates a scanner. known reports whether a tag name has a
// handler; escapes only apply to known names. A nil known treats every
// name as unknown.
func NewScanner(config ScannerConfig, known func(name string) bool, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if known == nil {
		known = func(string) bool { return false }
	}
	logger.Debug(LogMsgScannerCreated,
		zap.Bool(LogFieldEscapes, config.Escapes),
		zap.String(LogFieldPolicy, config.Unclosed.String()),
	)
	return &Scanner{
		config: config,
		known:  known,
		logger: logger,
	}
}

// Cursor starts a scan of doc. Matches should be taken from one Cursor per
// document so close tags are indexed only once.
func (s *Scanner) Cursor(doc string) *Cursor {
	return &Cursor{scanner: s, doc: doc}
}

// Next returns the first match in doc at or after pos.
func (s *Scanner) Next(doc string, pos int) (Match, bool) {
	return s.Cursor(doc).Next(pos)
}

// All returns every top-level match in doc
func (s *Scanner) All(doc string) []Match {
	cursor := s.Cursor(doc)
	var matches []Match
	for pos := 0; pos < len(doc); {
		m, ok := cursor.Next(pos)
		if !ok {
			break
		}
		matches = append(matches, m)
		pos = m.End
	}
	return matches
}

// escapes reports whether [[name]] is an escape rather than text
func (s *Scanner) escapes(name string) bool {
	return s.config.Escapes && s.known(name)
}

// Cursor scans a single document. The close-tag index is built on first
// use, which keeps a full pass linear in the document length.
type Cursor struct {
	scanner *Scanner
	doc     string
	pairs   *PairIndex
}

// Next returns the first match at or after pos. A '[' that does not start
// a match is skipped and never revisited.
func (c *Cursor) Next(pos int) (Match, bool) {
	doc := c.doc
	for i := pos; i < len(doc); {
		idx := strings.IndexByte(doc[i:], CharOpenBracket)
		if idx < 0 {
			break
		}
		i += idx

		if c.scanner.config.Escapes && strings.HasPrefix(doc[i:], StrEscapeOpen) {
			if m, ok := c.escapeAt(i); ok {
				return m, true
			}
			i++
			continue
		}

		if m, ok := c.tagAt(i); ok {
			return m, true
		}
		i++
	}

	return Match{}, false
}

// extract resolves the close tag for an open head ending at from
func (c *Cursor) extract(name string, from int) (Extraction, bool) {
	if c.pairs == nil {
		c.pairs = NewPairIndex(c.doc, c.scanner.escapes)
	}
	return c.pairs.Lookup(name, from)
}

// tagAt resolves a tag starting exactly at pos, including its content and
// close tag when paired.
func (c *Cursor) tagAt(pos int) (Match, bool) {
	head, ok := ScanHead(c.doc, pos)
	if !ok {
		return Match{}, false
	}

	m := Match{
		Kind:  MatchTag,
		Head:  head,
		Start: head.Start,
		End:   head.End,
	}
	if head.SelfClosing {
		return m, true
	}

	if ext, found := c.extract(head.Name, head.End); found {
		m.Paired = true
		m.ContentStart = ext.ContentStart
		m.ContentEnd = ext.ContentEnd
		m.End = ext.End
		return m, true
	}

	policy := c.scanner.config.Unclosed
	c.scanner.logger.Debug(LogMsgUnclosedTag,
		zap.String(LogFieldTagName, head.Name),
		zap.Int(LogFieldOffset, pos),
		zap.String(LogFieldPolicy, policy.String()),
	)
	if policy == UnclosedText {
		return Match{}, false
	}
	m.Unclosed = true
	return m, true
}

// escapeAt resolves an escape at pos for a known tag. "[[tag]]" and
// "[[tag]...[/tag]]" consume both escape brackets, the bare head form
// winning. Without the closing ']' only the leading '[' is consumed and the
// head is still literal.
func (c *Cursor) escapeAt(pos int) (Match, bool) {
	doc := c.doc
	head, ok := ScanHead(doc, pos+1)
	if !ok || !c.scanner.known(head.Name) {
		return Match{}, false
	}

	m := Match{
		Kind:  MatchEscape,
		Head:  head,
		Start: pos,
	}
	if head.End < len(doc) && doc[head.End] == CharCloseBracket {
		m.End = head.End + 1
		return m, true
	}

	if !head.SelfClosing {
		ext, found := c.extract(head.Name, head.End)
		if found && ext.End < len(doc) && doc[ext.End] == CharCloseBracket {
			m.Paired = true
			m.ContentStart = ext.ContentStart
			m.ContentEnd = ext.ContentEnd
			m.End = ext.End + 1
			return m, true
		}
	}

	m.Unclosed = true
	m.End = head.End
	return m, true
}

// isNameRune reports whether r may appear in a tag name
func isNameRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == CharUnderscore || r == CharHyphen
}
