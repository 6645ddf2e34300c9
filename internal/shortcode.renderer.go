package internal

import (
	"strings"

	"go.uber.org/zap"
)

// RendererConfig holds renderer configuration options.
type RendererConfig struct {
	Scanner   ScannerConfig
	Recursive bool // Render inner content before dispatch
	MaxDepth  int  // Maximum recursive render depth (0 = unlimited)
}

// DefaultRendererConfig returns the default renderer configuration.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Scanner:  DefaultScannerConfig(),
		MaxDepth: DefaultMaxDepth,
	}
}

// Renderer substitutes shortcodes in a document with handler output.
// Render is total: anything that is not a recognized, registered shortcode
// is copied to the output unchanged.
type Renderer struct {
	registry *Registry
	scanner  *Scanner
	config   RendererConfig
	logger   *zap.Logger
}

// NewRenderer creates a renderer over the given registry.
func NewRenderer(registry *Registry, config RendererConfig, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRendererCreated,
		zap.Bool(LogFieldRecursive, config.Recursive),
		zap.Int(LogFieldMaxDepth, config.MaxDepth),
	)
	return &Renderer{
		registry: registry,
		scanner:  NewScanner(config.Scanner, registry.Has, logger),
		config:   config,
		logger:   logger,
	}
}

// Scanner returns the scanner used by this renderer.
func (r *Renderer) Scanner() *Scanner {
	return r.scanner
}

// Render processes doc and returns the substituted output.
func (r *Renderer) Render(doc string) string {
	r.logger.Debug(LogMsgRenderStart, zap.Int(LogFieldSource, len(doc)))
	out := r.render(doc, 0)
	r.logger.Debug(LogMsgRenderEnd, zap.Int(LogFieldOutput, len(out)))
	return out
}

// render walks doc with a cursor, copying unmatched spans verbatim and
// splicing in the output of each match.
func (r *Renderer) render(doc string, depth int) string {
	if strings.IndexByte(doc, CharOpenBracket) < 0 {
		return doc
	}

	var sb strings.Builder
	sb.Grow(len(doc))

	cursor := r.scanner.Cursor(doc)
	pos := 0
	for pos < len(doc) {
		m, ok := cursor.Next(pos)
		if !ok {
			break
		}
		sb.WriteString(doc[pos:m.Start])
		sb.WriteString(r.dispatch(doc, m, depth))
		pos = m.End
	}
	sb.WriteString(doc[pos:])

	return sb.String()
}

// dispatch produces the output for a single match.
func (r *Renderer) dispatch(doc string, m Match, depth int) string {
	if m.Kind == MatchEscape {
		r.logger.Debug(LogMsgEscapeEmitted,
			zap.String(LogFieldTagName, m.Head.Name),
			zap.Int(LogFieldOffset, m.Start),
		)
		return m.Literal(doc)
	}

	handler, ok := r.registry.Get(m.Head.Name)
	if !ok {
		r.logger.Debug(LogMsgTagPassthrough,
			zap.String(LogFieldTagName, m.Head.Name),
			zap.Int(LogFieldOffset, m.Start),
		)
		if !m.Paired || !r.config.Recursive {
			return m.Raw(doc)
		}
		// Keep open and close tags, render what is between them
		return doc[m.Start:m.ContentStart] +
			r.renderInner(m.Content(doc), depth) +
			doc[m.ContentEnd:m.End]
	}

	call := Call{
		Name:     m.Head.Name,
		HasAttrs: m.Head.HasAttrs,
	}
	if m.Head.HasAttrs {
		call.Attrs = ParseAttrs(m.Head.AttrText)
	}
	if m.Paired {
		call.HasContent = true
		call.Content = m.Content(doc)
		if r.config.Recursive {
			call.Content = r.renderInner(call.Content, depth)
		}
	}

	r.logger.Debug(LogMsgHandlerInvoked,
		zap.String(LogFieldTagName, call.Name),
		zap.Int(LogFieldOffset, m.Start),
		zap.Bool(LogFieldPaired, m.Paired),
	)
	return handler.Handle(call)
}

// renderInner renders nested content one level deeper, or returns it
// untouched once the depth limit is reached.
func (r *Renderer) renderInner(content string, depth int) string {
	next := depth + 1
	if r.config.MaxDepth > 0 && next > r.config.MaxDepth {
		r.logger.Warn(LogMsgDepthExceeded,
			zap.Int(LogFieldDepth, next),
			zap.Int(LogFieldMaxDepth, r.config.MaxDepth),
		)
		return content
	}
	return r.render(content, next)
}
