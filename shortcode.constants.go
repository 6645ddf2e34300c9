package shortcode

import (
	"github.com/itsatony/go-shortcode/internal"
)

// DefaultMaxDepth is the default recursion limit for recursive rendering.
const DefaultMaxDepth = internal.DefaultMaxDepth

// UnclosedPolicy defines how an open tag without a matching close tag is
// rendered.
type UnclosedPolicy int

const (
	// UnclosedStandalone renders the open tag like a self-closing tag:
	// the handler is called without content.
	UnclosedStandalone UnclosedPolicy = iota
	// UnclosedText emits the opening bracket as text and keeps scanning
	// after it, so the tag is never dispatched.
	UnclosedText
)

// Unclosed policy string values for configuration parsing
const (
	UnclosedNameStandalone = internal.UnclosedNameStandalone
	UnclosedNameText       = internal.UnclosedNameText
)

// String returns the string representation of the policy
func (p UnclosedPolicy) String() string {
	return p.toInternal().String()
}

// toInternal converts the policy to its internal form
func (p UnclosedPolicy) toInternal() internal.UnclosedPolicy {
	if p == UnclosedText {
		return internal.UnclosedText
	}
	return internal.UnclosedStandalone
}

// ParseUnclosedPolicy converts a policy name to an UnclosedPolicy.
// An empty name selects UnclosedStandalone.
func ParseUnclosedPolicy(name string) (UnclosedPolicy, error) {
	switch name {
	case "", UnclosedNameStandalone:
		return UnclosedStandalone, nil
	case UnclosedNameText:
		return UnclosedText, nil
	default:
		return UnclosedStandalone, NewInvalidConfigValueError(ConfigFieldUnclosed, name, ErrMsgInvalidUnclosed)
	}
}

// Configuration field names reported in validation error metadata
const (
	ConfigFieldMaxDepth   = "max_depth"
	ConfigFieldUnclosed   = "unclosed"
	ConfigFieldShortcodes = "shortcodes"
)

// Template function names available to template handlers
const (
	TemplateFuncUpper = "upper"
	TemplateFuncLower = "lower"
	TemplateFuncTrim  = "trim"
)

// Log message constants
const (
	LogMsgEngineCreated       = "shortcode engine created"
	LogMsgRegistrationIgnored = "shortcode registration ignored"
	LogMsgTemplateFailed      = "shortcode template execution failed"
	LogMsgConfigLoaded        = "shortcode config loaded"
)

// Log field names
const (
	LogFieldTagName   = "tag_name"
	LogFieldHandlers  = "handler_count"
	LogFieldRecursive = "recursive"
	LogFieldMaxDepth  = "max_depth"
)
