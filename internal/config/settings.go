package config

import (
	"fmt"

	"github.com/vk/csvpeek/internal/fields"
)

// Log output styles.
const (
	StylePlain     = "plain"
	StyleDecorated = "decorated"
	StyleJSON      = "json"
)

// Settings is the unified representation of the tool's tunable options.
// Values resolve in three layers: built-in defaults, then the optional
// settings file, then explicit command-line flags.
type Settings struct {
	// Sentinel is the placeholder substituted for missing fields.
	Sentinel string

	// LogStyle selects the log handler: plain, decorated or json.
	LogStyle string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Default returns the built-in settings layer.
func Default() Settings {
	return Settings{
		Sentinel: fields.DefaultSentinel,
		LogStyle: StylePlain,
		LogLevel: "info",
	}
}

// Merge overlays the non-empty fields of over onto s and returns the result.
// Empty fields in over mean "not set at this layer".
func (s Settings) Merge(over Settings) Settings {
	if over.Sentinel != "" {
		s.Sentinel = over.Sentinel
	}
	if over.LogStyle != "" {
		s.LogStyle = over.LogStyle
	}
	if over.LogLevel != "" {
		s.LogLevel = over.LogLevel
	}
	return s
}

// Validate checks a fully merged Settings value.
func (s Settings) Validate() error {
	switch s.LogStyle {
	case StylePlain, StyleDecorated, StyleJSON:
	default:
		return fmt.Errorf("invalid log style %q: must be 'plain', 'decorated' or 'json'", s.LogStyle)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", s.LogLevel)
	}
	if s.Sentinel == "" {
		return fmt.Errorf("sentinel must not be empty")
	}
	return nil
}
