package app

import (
	"errors"
	"strings"

	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

// AlgorithmAll selects every algorithm plus a comparison table.
const AlgorithmAll = "all"

// Config is what the command line asks for. Zero values mean "use the
// config file or its defaults".
type Config struct {
	WorkloadPath string
	ConfigPath   string
	Algorithm    string
	Quantum      int64

	LogFormat string
	LogLevel  string

	Serve bool
	Port  int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkloadPath == "" && !cfg.Serve {
		return nil, errors.New("a workload path is required unless -serve is set")
	}
	cfg.Algorithm = strings.ToLower(strings.TrimSpace(cfg.Algorithm))
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAll
	}
	if cfg.Algorithm != AlgorithmAll {
		if _, err := scheduler.ParseAlgorithm(cfg.Algorithm); err != nil {
			return nil, err
		}
	}
	if cfg.Quantum < 0 {
		return nil, errors.New("quantum must be > 0")
	}
	return &cfg, nil
}
