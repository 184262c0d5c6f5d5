package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/TigerCipher/cpu-scheduler/internal/config"
)

// App holds the resolved settings and the writers a run reports to.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	appCfg   *Config
	settings *config.Config
}

// NewApp loads the settings file, applies command-line overrides and builds
// the logger. Reports go to outW and logs to logW.
func NewApp(outW, logW io.Writer, appCfg *Config) (*App, error) {
	settings, err := config.Load(appCfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if appCfg.Quantum > 0 {
		settings.TimeQuantum = appCfg.Quantum
	}
	if appCfg.Port > 0 {
		settings.Port = appCfg.Port
	}
	if appCfg.LogLevel != "" {
		settings.LogLevel = appCfg.LogLevel
	}
	if appCfg.LogFormat != "" {
		settings.LogFormat = appCfg.LogFormat
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", settings.LogLevel, "format", settings.LogFormat)

	return &App{
		outW:     outW,
		logger:   logger,
		appCfg:   appCfg,
		settings: settings,
	}, nil
}

// Settings returns the merged configuration. This is primarily for testing.
func (a *App) Settings() config.Config {
	return *a.settings
}
