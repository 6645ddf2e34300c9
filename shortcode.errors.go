package shortcode

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	// Registration errors
	ErrMsgEmptyTagName = "shortcode tag name cannot be empty"
	ErrMsgNilHandler   = "shortcode handler cannot be nil"

	// Configuration errors
	ErrMsgConfigRead      = "failed to read shortcode config"
	ErrMsgConfigParse     = "invalid shortcode config"
	ErrMsgInvalidUnclosed = "invalid unclosed tag policy"
	ErrMsgNegativeDepth   = "max depth cannot be negative"

	// Template errors
	ErrMsgTemplateParse = "shortcode template parsing failed"
)

// Error code constants for categorization
const (
	ErrCodeRegistry = "SHORTCODE_REGISTRY"
	ErrCodeConfig   = "SHORTCODE_CONFIG"
	ErrCodeTemplate = "SHORTCODE_TEMPLATE"
)

// Metadata keys attached to errors
const (
	MetaKeyTag   = "tag"
	MetaKeyField = "field"
	MetaKeyValue = "value"
)

// NewRegistrationError creates an error for a rejected handler registration
func NewRegistrationError(msg string, tagName string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, msg).
		WithMetadata(MetaKeyTag, tagName)
}

// NewConfigError creates an error for an unreadable or unparsable config
func NewConfigError(msg string, cause error) error {
	if cause == nil {
		return cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg)
}

// NewInvalidConfigValueError creates an error for a config field holding an
// unsupported value
func NewInvalidConfigValueError(field string, value string, msg string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

// NewTemplateError creates an error for a template handler that fails to parse
func NewTemplateError(tagName string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeTemplate, ErrMsgTemplateParse).
		WithMetadata(MetaKeyTag, tagName)
}
