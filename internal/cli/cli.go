// Package cli parses and validates command-line arguments into an
// app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/csvpeek/internal/app"
	"github.com/vk/csvpeek/internal/config"
	"github.com/vk/csvpeek/internal/fsutil"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("csvpeek", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
csvpeek - Inspect one line of a CSV file, with missing-field repair.

Usage:
  csvpeek [options] CSV_PATH

Arguments:
  CSV_PATH
    Path to the CSV file to inspect. The first line is treated as the header.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the CSV file.")
	fFlag := flagSet.String("f", "", "Path to the CSV file (shorthand).")
	lineFlag := flagSet.Int("line", 0, "Zero-based ordinal of the line to extract. 0 is the header row.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	sentinelFlag := flagSet.String("sentinel", "", "Placeholder substituted for missing fields.")
	logStyleFlag := flagSet.String("log-style", "", "Log output style. Options: 'plain', 'decorated' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *fileFlag != "" {
		path = *fileFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	if *lineFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid line: must be zero or greater"}
	}

	logStyle := strings.ToLower(*logStyleFlag)
	switch logStyle {
	case "", config.StylePlain, config.StyleDecorated, config.StyleJSON:
		// valid, or left for the settings file to decide
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-style: must be 'plain', 'decorated' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn' or 'error'"}
	}

	// Existence is validated here, before the core is ever invoked.
	if err := fsutil.EnsureRegularFile(path); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid CSV_PATH: %v", err)}
	}
	if *configFlag != "" {
		if err := fsutil.EnsureRegularFile(*configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid config: %v", err)}
		}
	}

	appConfig, err := app.NewConfig(app.Config{
		FilePath:     path,
		SettingsPath: *configFlag,
		Ordinal:      *lineFlag,
		Sentinel:     *sentinelFlag,
		LogStyle:     logStyle,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return appConfig, false, nil
}
