package internal

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Call carries one shortcode occurrence to its handler.
type Call struct {
	Name       string
	Content    string
	HasContent bool // false for self-closing and standalone tags
	Attrs      []Attr
	HasAttrs   bool // false when the tag had no attribute text at all
}

// InternalHandler mirrors the public Handler interface for internal use.
// This allows the internal package to work with handlers without import cycles.
type InternalHandler interface {
	Handle(call Call) string
}

// Registry maps tag names to handlers. Registering an existing name
// replaces the previous handler. It is safe for concurrent use.
type Registry struct {
	handlers map[string]InternalHandler
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewRegistry creates a new handler registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		handlers: make(map[string]InternalHandler),
		logger:   logger,
	}
}

// Register adds or replaces the handler for name.
func (r *Registry) Register(name string, handler InternalHandler) error {
	if handler == nil {
		return NewRegistryError(ErrMsgNilHandler, name)
	}
	if name == StringValueEmpty {
		return NewRegistryError(ErrMsgEmptyTagName, StringValueEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		r.logger.Debug(LogMsgHandlerOverwritten, zap.String(LogFieldTagName, name))
	} else {
		r.logger.Debug(LogMsgHandlerRegistered, zap.String(LogFieldTagName, name))
	}
	r.handlers[name] = handler
	return nil
}

// Get retrieves a handler by tag name.
// Returns the handler and true if found, or nil and false if not.
func (r *Registry) Get(name string) (InternalHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[name]
	return handler, exists
}

// Has checks if a handler is registered for the given tag name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.handlers[name]
	return exists
}

// List returns all registered tag names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// RegistryError represents a registry operation error
type RegistryError struct {
	Message string
	TagName string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, tagName string) *RegistryError {
	return &RegistryError{
		Message: message,
		TagName: tagName,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.TagName != StringValueEmpty {
		return fmt.Sprintf("%s: %s", e.Message, e.TagName)
	}
	return e.Message
}
