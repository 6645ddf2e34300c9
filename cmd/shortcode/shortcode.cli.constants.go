package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameScan    = "scan"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagInput   = "input"
	FlagConfig  = "config"
	FlagOutput  = "output"
	FlagVerbose = "verbose"
	FlagFormat  = "format"
)

// Flag names - short form
const (
	FlagInputShort   = "i"
	FlagConfigShort  = "c"
	FlagOutputShort  = "o"
	FlagVerboseShort = "v"
	FlagFormatShort  = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingInput      = "input source required"
	ErrMsgInvalidFlags      = "invalid flags"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgReadConfigFailed  = "failed to read config"
	ErrMsgInvalidConfig     = "invalid config"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `go-shortcode - WordPress-style shortcode rendering CLI

Usage:
    shortcode <command> [options]

Commands:
    render      Render a document's shortcodes
    scan        List the shortcodes found in a document
    version     Show version information
    help        Show help for a command

Use "shortcode help <command>" for more information about a command.`

	HelpRenderUsage = `Render a document's shortcodes

Usage:
    shortcode render [options]

Options:
    -i, --input <file>      Document file (use "-" for stdin)
    -c, --config <file>     YAML config with shortcode templates
    -o, --output <file>     Output file (default: stdout)
    -v, --verbose           Log rendering details to stderr

Examples:
    shortcode render -i post.txt -c shortcodes.yaml
    cat post.txt | shortcode render -i - -c shortcodes.yaml
    shortcode render -i post.txt -c shortcodes.yaml -o post.html`

	HelpScanUsage = `List the shortcodes found in a document

Usage:
    shortcode scan [options]

Options:
    -i, --input <file>      Document file (use "-" for stdin)
    -c, --config <file>     YAML config; marks which shortcodes are registered
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    shortcode scan -i post.txt
    shortcode scan -i post.txt -c shortcodes.yaml -F json`

	HelpVersionUsage = `Show version information

Usage:
    shortcode version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    shortcode help [command]

Commands:
    render      Show help for render command
    scan        Show help for scan command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-shortcode version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Scan output format templates
const (
	ScanTextLineFormat = "%d:%d\t%s\t%s\t%s\n"
	ScanTextSummary    = "%d shortcode(s) found\n"
	ScanStatusEscaped  = "escaped"
	ScanStatusKnown    = "registered"
	ScanStatusUnknown  = "unregistered"
)

// CLI metadata
const (
	CLIName = "shortcode"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
