package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/csvpeek/internal/config"
	"github.com/vk/csvpeek/internal/hclconf"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings config.Settings
}

// NewApp is the constructor for the main application. It resolves the
// effective settings (built-in defaults, then the optional settings file,
// then command-line overrides) and builds an isolated logger from them.
// Configuration failures are returned, never panicked.
func NewApp(outW io.Writer, appConfig *Config) (*App, error) {
	settings := config.Default()

	if appConfig.SettingsPath != "" {
		overlay, err := hclconf.Load(context.Background(), appConfig.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = settings.Merge(overlay)
	}

	settings = settings.Merge(config.Settings{
		Sentinel: appConfig.Sentinel,
		LogStyle: appConfig.LogStyle,
		LogLevel: appConfig.LogLevel,
	})

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(settings.LogLevel, settings.LogStyle, outW)
	logger.Debug("Logger configured successfully.", "style", settings.LogStyle, "level", settings.LogLevel)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		settings: settings,
	}, nil
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() config.Settings {
	return a.settings
}
