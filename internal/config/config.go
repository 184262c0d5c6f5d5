// Package config loads the simulator's settings from an optional YAML file
// and CPUSCHED_* environment variables, on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultPort          = 9095
	DefaultTimeQuantum   = 2
	DefaultMaxDispatches = 1_000_000
)

type Config struct {
	Port        int
	TimeQuantum int64
	// MaxDispatches caps the timeline length of one run requested over HTTP.
	MaxDispatches int64
	LogLevel      string
	LogFormat     string
}

// Load reads configuration. With an empty path it looks for config.yaml in
// the working directory and silently uses defaults when none exists; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("scheduler.round_robin.time_quantum", DefaultTimeQuantum)
	v.SetDefault("scheduler.max_dispatches", DefaultMaxDispatches)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("CPUSCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Port:        v.GetInt("server.port"),
		TimeQuantum:   v.GetInt64("scheduler.round_robin.time_quantum"),
		MaxDispatches: v.GetInt64("scheduler.max_dispatches"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
		LogFormat:     strings.ToLower(v.GetString("log.format")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TimeQuantum <= 0 {
		return fmt.Errorf("%w: scheduler.round_robin.time_quantum must be > 0, got %d", ErrInvalidConfig, c.TimeQuantum)
	}
	if c.MaxDispatches <= 0 {
		return fmt.Errorf("%w: scheduler.max_dispatches must be > 0, got %d", ErrInvalidConfig, c.MaxDispatches)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: server.port out of range: %d", ErrInvalidConfig, c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log.format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
