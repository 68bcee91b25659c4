package app

import (
	"io"
	"log/slog"

	"github.com/vk/csvpeek/internal/config"
	"github.com/vk/csvpeek/internal/logging"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, styleStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	switch styleStr {
	case config.StyleJSON:
		handler = slog.NewJSONHandler(outW, handlerOpts)
	case config.StyleDecorated:
		handler = logging.NewDecoratedHandler(outW, handlerOpts)
	default:
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
