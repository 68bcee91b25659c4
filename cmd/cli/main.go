package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/vk/csvpeek/internal/app"
	"github.com/vk/csvpeek/internal/cli"
	"github.com/vk/csvpeek/internal/scan"
)

// Exit codes: 2 for usage errors and I/O failures, 3 for a line ordinal past
// the end of the file, 1 for anything else.
const (
	exitFailure      = 1
	exitUsageOrIO    = 2
	exitLineNotFound = 3
)

// main is the entrypoint for the csvpeek application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	application, err := app.NewApp(outW, appConfig)
	if err != nil {
		// Settings-layer failures are usage-class errors.
		return &cli.ExitError{Code: exitUsageOrIO, Message: err.Error()}
	}

	return application.Run(context.Background())
}

// exitCode maps an error from run to the process exit status.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var notFound *scan.LineNotFoundError
	if errors.As(err, &notFound) {
		return exitLineNotFound
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return exitUsageOrIO
	}
	return exitFailure
}
