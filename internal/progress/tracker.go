// Package progress renders an inline progress bar for the extraction loop.
// The bar exists to show the loop is alive; it carries no state beyond the
// current step.
package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vk/csvpeek/internal/logging"
)

const barWidth = 30

var stepStyle = lipgloss.NewStyle().Foreground(logging.ColorInfo)

// Tracker draws a carriage-return refreshed progress bar as steps complete.
// It is not safe for concurrent use; the tool's loop is single-threaded.
type Tracker struct {
	w     io.Writer
	bar   progress.Model
	total int
	done  int
}

// NewTracker creates a Tracker over total steps writing frames to w.
func NewTracker(w io.Writer, total int) *Tracker {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = barWidth
	return &Tracker{w: w, bar: bar, total: total}
}

// Advance marks one step complete and redraws the bar in place.
func (t *Tracker) Advance() {
	if t.done < t.total {
		t.done++
	}
	fraction := 1.0
	if t.total > 0 {
		fraction = float64(t.done) / float64(t.total)
	}
	fmt.Fprintf(t.w, "\r%s %s",
		t.bar.ViewAs(fraction),
		stepStyle.Render(fmt.Sprintf("%d/%d", t.done, t.total)),
	)
}

// Finish terminates the bar line. It is safe to call after an error, before
// any step completed.
func (t *Tracker) Finish() {
	fmt.Fprintln(t.w)
}
