package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-shortcode"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	inputPath  string
	configPath string
	outputPath string
	verbose    bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	// Read document
	document, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Build engine from config
	engineCfg, code, err := loadConfig(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadConfigFailed, err)
		return code
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	sc, err := shortcode.NewFromConfig(engineCfg, shortcode.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeError
	}

	result := sc.Render(string(document))

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, "", "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.inputPath == "" {
		return nil, errors.New(ErrMsgMissingInput)
	}

	return cfg, nil
}
