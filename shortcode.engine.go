package shortcode

import (
	"github.com/itsatony/go-shortcode/internal"
	"go.uber.org/zap"
)

// Shortcode is the shortcode engine. It owns the handler registry and
// renders documents against it. A Shortcode is safe for concurrent use;
// handlers may be added while other goroutines render.
type Shortcode struct {
	registry *internal.Registry
	renderer *internal.Renderer
	config   *engineConfig
	logger   *zap.Logger
}

// New creates a new Shortcode engine with the given options.
func New(opts ...Option) *Shortcode {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := internal.NewRegistry(logger)
	rendererConfig := internal.RendererConfig{
		Scanner: internal.ScannerConfig{
			Escapes:  config.escapes,
			Unclosed: config.unclosed.toInternal(),
		},
		Recursive: config.recursive,
		MaxDepth:  config.maxDepth,
	}

	logger.Debug(LogMsgEngineCreated,
		zap.Bool(LogFieldRecursive, config.recursive),
		zap.Int(LogFieldMaxDepth, config.maxDepth),
	)

	return &Shortcode{
		registry: registry,
		renderer: internal.NewRenderer(registry, rendererConfig, logger),
		config:   config,
		logger:   logger,
	}
}

// Add registers handler under name, replacing any previous handler for the
// same name. An empty name or nil handler is ignored and logged.
func (s *Shortcode) Add(name string, handler Handler) {
	if err := s.Register(name, handler); err != nil {
		s.logger.Warn(LogMsgRegistrationIgnored,
			zap.String(LogFieldTagName, name),
			zap.Error(err),
		)
	}
}

// AddFunc registers a function as the handler for name.
func (s *Shortcode) AddFunc(name string, fn func(content Content, attrs Attributes) string) {
	if fn == nil {
		s.Add(name, nil)
		return
	}
	s.Add(name, HandlerFunc(fn))
}

// Register adds or replaces the handler for name.
// Returns an error if name is empty or handler is nil.
func (s *Shortcode) Register(name string, handler Handler) error {
	if name == "" {
		return NewRegistrationError(ErrMsgEmptyTagName, name)
	}
	if handler == nil {
		return NewRegistrationError(ErrMsgNilHandler, name)
	}
	if err := s.registry.Register(name, &handlerAdapter{handler: handler}); err != nil {
		return NewRegistrationError(err.Error(), name)
	}
	return nil
}

// MustRegister adds a handler and panics if registration fails.
func (s *Shortcode) MustRegister(name string, handler Handler) {
	if err := s.Register(name, handler); err != nil {
		panic(err)
	}
}

// Has checks if a handler is registered for the given tag name.
func (s *Shortcode) Has(name string) bool {
	return s.registry.Has(name)
}

// Get returns the handler registered for name.
func (s *Shortcode) Get(name string) (Handler, bool) {
	h, ok := s.registry.Get(name)
	if !ok {
		return nil, false
	}
	adapter, ok := h.(*handlerAdapter)
	if !ok {
		return nil, false
	}
	return adapter.handler, true
}

// Names returns all registered tag names in sorted order.
func (s *Shortcode) Names() []string {
	return s.registry.List()
}

// Count returns the number of registered handlers.
func (s *Shortcode) Count() int {
	return s.registry.Count()
}

// Render replaces every registered shortcode in document with its handler
// output. Render never fails: unknown and malformed tags are copied to the
// output unchanged.
func (s *Shortcode) Render(document string) string {
	return s.renderer.Render(document)
}
