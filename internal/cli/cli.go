package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/TigerCipher/cpu-scheduler/internal/app"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the app configuration,
// whether the program should exit cleanly without running, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cpusched", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cpusched - CPU scheduling simulator (FCFS, SJF, round-robin, priority).

Usage:
  cpusched [options] WORKLOAD
  cpusched -serve [options]

Arguments:
  WORKLOAD
    Path to a .csv file (arrival,burst[,priority] per row) or a .hcl file.

Options:
`)
		flagSet.PrintDefaults()
	}

	algorithmFlag := flagSet.String("algorithm", app.AlgorithmAll, "Algorithm to run: 'fcfs', 'sjf', 'rr', 'priority' or 'all'.")
	quantumFlag := flagSet.Int64("quantum", 0, "Round-robin time quantum. 0 uses the workload file or config value.")
	configFlag := flagSet.String("config", "", "Path to a YAML config file. Defaults to ./config.yaml when present.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	serveFlag := flagSet.Bool("serve", false, "Serve the HTTP API instead of scheduling a workload file.")
	portFlag := flagSet.Int("port", 0, "Port for the HTTP API. 0 uses the config value.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := flagSet.Arg(0)
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one workload path, got %d", flagSet.NArg())}
	}
	if path == "" && !*serveFlag {
		slog.Debug("No workload path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *quantumFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid quantum: must be > 0"}
	}
	if *portFlag < 0 || *portFlag > 65535 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid port: %d", *portFlag)}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		WorkloadPath: path,
		ConfigPath:   *configFlag,
		Algorithm:    *algorithmFlag,
		Quantum:      *quantumFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Serve:        *serveFlag,
		Port:         *portFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
