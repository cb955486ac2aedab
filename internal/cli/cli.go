package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	DocPath     string
	ProjectPath string
	ToolsPath   string
	ThemePath   string
	ReadOnly    bool
	LogFormat   string
	LogLevel    string
	LogFile     string
	Version     bool
}

// Parse processes args. It returns the options, whether the program should
// exit cleanly right away (help), or an *ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("stanza", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stanza - edit the poetry block of a block document in the terminal.

Usage:
  stanza [options] [DOCUMENT]

Arguments:
  DOCUMENT
    Path to the JSON document. Created with one empty poetry block when
    missing.

Keys:
  tab / shift+tab   indent / outdent the current line
  ctrl+s            save
  ctrl+c            save and quit

Options:
`)
		flagSet.PrintDefaults()
	}

	docFlag := flagSet.String("doc", "", "Path to the JSON document.")
	projectFlag := flagSet.String("project", "", "Path to the HCL project file. Optional.")
	toolsFlag := flagSet.String("tools", "", "Path to a TOML file with tool overrides. Optional.")
	themeFlag := flagSet.String("theme", "", "Path to a TOML theme file. Optional.")
	readOnlyFlag := flagSet.Bool("readonly", false, "Open the block read-only.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "stanza.log", "File receiving log output. The terminal belongs to the editor.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	opts := &Options{
		ProjectPath: *projectFlag,
		ToolsPath:   *toolsFlag,
		ThemePath:   *themeFlag,
		ReadOnly:    *readOnlyFlag,
		LogFile:     *logFileFlag,
		Version:     *versionFlag,
	}
	if opts.Version {
		return opts, false, nil
	}

	switch {
	case *docFlag != "" && flagSet.NArg() > 0:
		return nil, false, &ExitError{Code: 2, Message: "document given both as -doc and as an argument"}
	case *docFlag != "":
		opts.DocPath = *docFlag
	case flagSet.NArg() == 1:
		opts.DocPath = flagSet.Arg(0)
	case flagSet.NArg() > 1:
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: expected at most one DOCUMENT"}
	}

	if opts.DocPath == "" {
		slog.Debug("No document path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	opts.LogFormat = strings.ToLower(*logFormatFlag)
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	opts.LogLevel = strings.ToLower(*logLevelFlag)
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	slog.Debug("CLI parser finished successfully.", "options", opts)
	return opts, false, nil
}

// NewLogger builds a logger for the validated level and format. It does not
// touch the default logger.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
