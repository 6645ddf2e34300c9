package internal

// Character constants
const (
	CharOpenBracket  = '['
	CharCloseBracket = ']'
	CharSlash        = '/'
	CharEquals       = '='
	CharDoubleQuote  = '"'
	CharSingleQuote  = '\''
	CharUnderscore   = '_'
	CharHyphen       = '-'
	CharSpace        = ' '
)

// String constants for tag matching
const (
	StrCloseTagOpen = "[/"
	StrSelfClose    = "/]"
	StrEscapeOpen   = "[["
)

// DefaultMaxDepth bounds recursive rendering of inner content.
const DefaultMaxDepth = 100

// UnclosedPolicy decides what happens to an open tag with no matching close.
type UnclosedPolicy int

const (
	// UnclosedStandalone renders the open tag as if it were self-closing.
	UnclosedStandalone UnclosedPolicy = iota
	// UnclosedText emits the opening bracket as text and resumes after it.
	UnclosedText
)

// Unclosed policy names
const (
	UnclosedNameStandalone = "standalone"
	UnclosedNameText       = "text"
)

// String returns the policy name
func (p UnclosedPolicy) String() string {
	switch p {
	case UnclosedText:
		return UnclosedNameText
	default:
		return UnclosedNameStandalone
	}
}

// Log message constants
const (
	LogMsgScannerCreated     = "scanner created"
	LogMsgRendererCreated    = "renderer created"
	LogMsgRenderStart        = "starting render"
	LogMsgRenderEnd          = "render complete"
	LogMsgHandlerInvoked     = "handler invoked"
	LogMsgTagPassthrough     = "no handler for tag, passing through"
	LogMsgEscapeEmitted      = "escaped tag emitted literally"
	LogMsgUnclosedTag        = "open tag has no matching close"
	LogMsgDepthExceeded      = "maximum render depth exceeded, content left unrendered"
	LogMsgRegistryCreated    = "registry created"
	LogMsgHandlerRegistered  = "handler registered"
	LogMsgHandlerOverwritten = "handler overwritten"
)

// Log field names
const (
	LogFieldSource    = "source_length"
	LogFieldOutput    = "output_length"
	LogFieldTagName   = "tag_name"
	LogFieldOffset    = "offset"
	LogFieldPaired    = "paired"
	LogFieldDepth     = "depth"
	LogFieldMaxDepth  = "max_depth"
	LogFieldPolicy    = "policy"
	LogFieldRecursive = "recursive"
	LogFieldEscapes   = "escapes"
)

// Registry error message constants
const (
	ErrMsgNilHandler   = "handler cannot be nil"
	ErrMsgEmptyTagName = "handler tag name cannot be empty"
)

// StringValueEmpty is the empty string sentinel used in comparisons
const StringValueEmpty = ""
