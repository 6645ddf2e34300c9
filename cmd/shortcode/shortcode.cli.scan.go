package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-shortcode"
)

// scanConfig holds parsed scan command configuration
type scanConfig struct {
	inputPath  string
	configPath string
	format     string
}

// scanTagOutput represents one shortcode in JSON output
type scanTagOutput struct {
	Name        string           `json:"name"`
	Raw         string           `json:"raw"`
	Line        int              `json:"line"`
	Column      int              `json:"column"`
	Offset      int              `json:"offset"`
	SelfClosing bool             `json:"self_closing"`
	Paired      bool             `json:"paired"`
	Escaped     bool             `json:"escaped"`
	Registered  bool             `json:"registered"`
	Attributes  []scanAttrOutput `json:"attributes,omitempty"`
	Content     *string          `json:"content,omitempty"`
}

// scanAttrOutput represents one attribute in JSON output. Attributes keep
// document order and duplicates; Flag marks a bare key with no value.
type scanAttrOutput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Flag  bool   `json:"flag"`
}

// scanOutput represents JSON output for scan
type scanOutput struct {
	Count int             `json:"count"`
	Tags  []scanTagOutput `json:"tags"`
}

func runScan(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseScanFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	document, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engineCfg, code, err := loadConfig(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadConfigFailed, err)
		return code
	}

	sc, err := shortcode.NewFromConfig(engineCfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeError
	}

	tags := sc.Scan(string(document))

	if cfg.format == OutputFormatJSON {
		return outputScanJSON(tags, stdout)
	}
	return outputScanText(tags, stdout)
}

func parseScanFlags(args []string) (*scanConfig, error) {
	fs := flag.NewFlagSet(CmdNameScan, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &scanConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.inputPath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func scanStatus(tag shortcode.Tag) string {
	switch {
	case tag.Escaped:
		return ScanStatusEscaped
	case tag.Registered:
		return ScanStatusKnown
	default:
		return ScanStatusUnknown
	}
}

func outputScanText(tags []shortcode.Tag, stdout io.Writer) int {
	for _, tag := range tags {
		fmt.Fprintf(stdout, ScanTextLineFormat,
			tag.Position.Line, tag.Position.Column, tag.Name, scanStatus(tag), tag.Raw)
	}
	fmt.Fprintf(stdout, ScanTextSummary, len(tags))
	return ExitCodeSuccess
}

func outputScanJSON(tags []shortcode.Tag, stdout io.Writer) int {
	output := scanOutput{
		Count: len(tags),
		Tags:  make([]scanTagOutput, 0, len(tags)),
	}

	for _, tag := range tags {
		item := scanTagOutput{
			Name:        tag.Name,
			Raw:         tag.Raw,
			Line:        tag.Position.Line,
			Column:      tag.Position.Column,
			Offset:      tag.Start,
			SelfClosing: tag.SelfClosing,
			Paired:      tag.Paired,
			Escaped:     tag.Escaped,
			Registered:  tag.Registered,
		}
		for _, attr := range tag.Attributes.All() {
			item.Attributes = append(item.Attributes, scanAttrOutput{
				Key:   attr.Key,
				Value: attr.Value,
				Flag:  !attr.HasValue,
			})
		}
		if content, ok := tag.Content.Get(); ok {
			item.Content = &content
		}
		output.Tags = append(output.Tags, item)
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))
	return ExitCodeSuccess
}
