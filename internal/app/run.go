package app

import (
	"context"
	"fmt"

	"github.com/vk/csvpeek/internal/ctxlog"
	"github.com/vk/csvpeek/internal/fields"
	"github.com/vk/csvpeek/internal/progress"
	"github.com/vk/csvpeek/internal/scan"
)

// Run executes one inspection: report the file's length and data-row count,
// then extract the requested line, normalize it, and print the field
// sequence. Each invocation is independent; nothing is cached across runs.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "file", a.config.FilePath, "ordinal", a.config.Ordinal)

	total, err := scan.Count(ctx, a.config.FilePath)
	if err != nil {
		return fmt.Errorf("failed to measure %s: %w", a.config.FilePath, err)
	}

	dataRows := total - 1
	if total == 0 {
		// An empty file has no header to subtract.
		dataRows = 0
		a.logger.Warn("File is empty.", "file", a.config.FilePath)
	}
	fmt.Fprintf(a.outW, "File %s length is %d\n", a.config.FilePath, total)
	fmt.Fprintf(a.outW, "Number of data rows in %s: %d\n", a.config.FilePath, dataRows)
	fmt.Fprintf(a.outW, "Line %d in %s is:\n", a.config.Ordinal, a.config.FilePath)

	normalizer := fields.Normalizer{Sentinel: a.settings.Sentinel}
	tracker := progress.NewTracker(a.outW, 1)

	// The loop body runs once: the tool targets exactly one line per
	// invocation. The tracker advances per extracted line, so widening the
	// range is all a multi-line walk would take.
	for ordinal := a.config.Ordinal; ordinal < a.config.Ordinal+1; ordinal++ {
		line, echoed, err := scan.LineAt(ctx, a.config.FilePath, ordinal)
		if err != nil {
			tracker.Finish()
			return err
		}
		a.logger.Debug("Raw line captured.", "ordinal", echoed, "text", line)

		values := normalizer.Normalize(line)
		tracker.Advance()
		tracker.Finish()
		a.renderFields(values)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
