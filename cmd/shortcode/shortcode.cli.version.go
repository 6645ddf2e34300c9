package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"gopkg.in/yaml.v3"
)

// versionConfig holds parsed version command configuration
type versionConfig struct {
	format string
}

// versionInfo holds version information, also used for JSON output
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsFile mirrors the versions.yaml release manifest
type versionsFile struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	info := getVersionInfo(versionSearchPaths())

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		info.Version, info.Commit, info.Branch, info.BuildTime, info.GoVersion)
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &versionConfig{}
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// versionSearchPaths lists where versions.yaml may live relative to the
// working directory
func versionSearchPaths() []string {
	return []string{
		VersionsFileName,
		filepath.Join("..", VersionsFileName),
		filepath.Join("..", "..", VersionsFileName),
	}
}

// getVersionInfo reads the first parsable versions.yaml in paths, falling
// back to the module build info
func getVersionInfo(paths []string) *versionInfo {
	info := &versionInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var vf versionsFile
		if err := yaml.Unmarshal(data, &vf); err != nil {
			continue
		}

		setIfNotEmpty(&info.Version, vf.Project.Version)
		setIfNotEmpty(&info.Commit, vf.Git.Commit)
		setIfNotEmpty(&info.Branch, vf.Git.Branch)
		setIfNotEmpty(&info.BuildTime, vf.Build.Time)
		setIfNotEmpty(&info.GoVersion, vf.Build.GoVersion)
		break
	}

	return info
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
