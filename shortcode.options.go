package shortcode

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Shortcode engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for a Shortcode engine.
type engineConfig struct {
	recursive bool
	maxDepth  int
	unclosed  UnclosedPolicy
	escapes   bool
	logger    *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		recursive: false,
		maxDepth:  DefaultMaxDepth,
		unclosed:  UnclosedStandalone,
		escapes:   true,
		logger:    nil,
	}
}

// WithRecursive enables rendering of shortcodes nested inside paired tags.
// Registered handlers then receive already rendered content, and the
// content of unregistered paired tags is rendered between their literal
// open and close tags.
// Default: false
func WithRecursive(recursive bool) Option {
	return func(c *engineConfig) {
		c.recursive = recursive
	}
}

// WithMaxDepth sets the maximum nesting depth for recursive rendering.
// Use 0 for unlimited depth. Negative values are ignored.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		if depth >= 0 {
			c.maxDepth = depth
		}
	}
}

// WithUnclosedPolicy sets how open tags without a matching close are handled.
// Default: UnclosedStandalone
func WithUnclosedPolicy(policy UnclosedPolicy) Option {
	return func(c *engineConfig) {
		c.unclosed = policy
	}
}

// WithEscapes toggles [[name]] escape recognition.
// Default: true
func WithEscapes(enabled bool) Option {
	return func(c *engineConfig) {
		c.escapes = enabled
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
