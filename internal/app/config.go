package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
// It is populated by the cli package and passed by parameter; there is no
// ambient or context-carried configuration.
type Config struct {
	FilePath     string // CSV file to inspect
	SettingsPath string // optional HCL settings file, empty means none
	Ordinal      int    // zero-based line to extract; 0 is the header

	// Flag-layer overrides. Empty means "not set on the command line",
	// letting the settings file or the built-in default apply.
	Sentinel string
	LogStyle string
	LogLevel string
}

// NewConfig validates the structural requirements of a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("FilePath is a required configuration field and cannot be empty")
	}
	if cfg.Ordinal < 0 {
		return nil, errors.New("Ordinal must be zero or greater")
	}
	return &cfg, nil
}
