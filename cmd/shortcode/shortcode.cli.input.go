package main

import (
	"io"
	"os"

	"github.com/itsatony/go-shortcode"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// newLogger returns a debug console logger on w when verbose is set,
// and a no-op logger otherwise
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// loadConfig reads the engine config at path. An empty path yields an
// empty config. The returned exit code is meaningful only when err != nil.
func loadConfig(path string) (*shortcode.Config, int, error) {
	if path == "" {
		return &shortcode.Config{}, ExitCodeSuccess, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ExitCodeInputError, err
	}
	defer f.Close()

	cfg, err := shortcode.LoadConfig(f)
	if err != nil {
		return nil, ExitCodeError, err
	}
	return cfg, ExitCodeSuccess, nil
}
