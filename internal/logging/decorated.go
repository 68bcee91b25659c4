// Package logging provides the decorated console handler backing the tool's
// "decorated" log style: colorized level badges and key=value attributes on
// a single line. The plain and json styles use the stock slog handlers and
// need nothing from this package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, shared with the report renderer in the app package.
const (
	ColorInfo    = lipgloss.Color("#2196F3")
	ColorWarn    = lipgloss.Color("#FFC107")
	ColorError   = lipgloss.Color("#e53935")
	ColorSuccess = lipgloss.Color("#8BC34A")
	ColorMuted   = lipgloss.Color("#6c7a94")
)

var (
	timeStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	attrKeyStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	messageStyle = lipgloss.NewStyle().Bold(true)

	levelStyles = map[slog.Level]lipgloss.Style{
		slog.LevelDebug: lipgloss.NewStyle().Foreground(ColorMuted),
		slog.LevelInfo:  lipgloss.NewStyle().Foreground(ColorInfo).Bold(true),
		slog.LevelWarn:  lipgloss.NewStyle().Foreground(ColorWarn).Bold(true),
		slog.LevelError: lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	}
)

// DecoratedHandler is a slog.Handler that renders records as styled,
// human-oriented single lines. It is safe for concurrent use.
type DecoratedHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewDecoratedHandler creates a DecoratedHandler writing to w. A nil opts
// uses the default level (info).
func NewDecoratedHandler(w io.Writer, opts *slog.HandlerOptions) *DecoratedHandler {
	h := &DecoratedHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: slog.LevelInfo,
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether records at the given level are emitted.
func (h *DecoratedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders one record.
func (h *DecoratedHandler) Handle(_ context.Context, rec slog.Record) error {
	var sb strings.Builder

	if !rec.Time.IsZero() {
		sb.WriteString(timeStyle.Render(rec.Time.Format("15:04:05")))
		sb.WriteByte(' ')
	}

	style, ok := levelStyles[rec.Level]
	if !ok {
		style = levelStyles[slog.LevelInfo]
	}
	sb.WriteString(style.Render(fmt.Sprintf("%-5s", rec.Level.String())))
	sb.WriteByte(' ')
	sb.WriteString(messageStyle.Render(rec.Message))

	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		h.appendAttr(&sb, prefix, attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&sb, prefix, attr)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *DecoratedHandler) appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	sb.WriteByte(' ')
	sb.WriteString(attrKeyStyle.Render(key))
	sb.WriteByte('=')
	fmt.Fprintf(sb, "%v", attr.Value.Resolve().Any())
}

// WithAttrs returns a handler that includes the given attributes on every
// record.
func (h *DecoratedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a handler that qualifies subsequent attribute keys with
// the group name.
func (h *DecoratedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}
