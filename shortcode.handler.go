package shortcode

import (
	"github.com/itsatony/go-shortcode/internal"
)

// Handler produces the replacement text for one shortcode occurrence.
// The returned string is inserted verbatim.
type Handler interface {
	Handle(content Content, attrs Attributes) string
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(content Content, attrs Attributes) string

// Handle calls f(content, attrs).
func (f HandlerFunc) Handle(content Content, attrs Attributes) string {
	return f(content, attrs)
}

// handlerAdapter adapts a public Handler to internal.InternalHandler
type handlerAdapter struct {
	handler Handler
}

// Handle converts the internal call into public value types
func (a *handlerAdapter) Handle(call internal.Call) string {
	var content Content
	if call.HasContent {
		content = NewContent(call.Content)
	}
	var attrs Attributes
	if call.HasAttrs {
		attrs = Attributes{list: call.Attrs, present: true}
	}
	return a.handler.Handle(content, attrs)
}
