package app

import (
	"context"
	"fmt"

	"github.com/TigerCipher/cpu-scheduler/internal/ctxlog"
	"github.com/TigerCipher/cpu-scheduler/internal/report"
	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
	"github.com/TigerCipher/cpu-scheduler/internal/workload"
)

// Run either serves the API or schedules the workload file and prints the
// reports, depending on the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.appCfg.Serve {
		return a.Serve(ctx)
	}

	file, err := workload.Load(ctx, a.appCfg.WorkloadPath)
	if err != nil {
		return fmt.Errorf("failed to load workload: %w", err)
	}
	quantum := a.quantum(file)
	a.logger.Info("Workload loaded.", "path", file.Path, "processes", len(file.Processes), "quantum", quantum)

	if a.appCfg.Algorithm == AlgorithmAll {
		results, err := scheduler.Compare(ctx, file.Processes, quantum)
		if err != nil {
			return fmt.Errorf("scheduling failed: %w", err)
		}
		for _, res := range results {
			report.Run(a.outW, res)
		}
		report.Comparison(a.outW, results)
		a.logger.Debug("App.Run method finished.", "runs", len(results))
		return nil
	}

	algorithm, err := scheduler.ParseAlgorithm(a.appCfg.Algorithm)
	if err != nil {
		return err
	}
	res, err := scheduler.Run(file.Processes, scheduler.NewPolicy(algorithm, quantum))
	if err != nil {
		return fmt.Errorf("scheduling failed: %w", err)
	}
	report.Run(a.outW, res)
	a.logger.Debug("App.Run method finished.", "runs", 1)
	return nil
}

// quantum picks the round-robin quantum: the command line wins, then the
// workload file, then the settings file.
func (a *App) quantum(file *workload.File) int64 {
	switch {
	case a.appCfg.Quantum > 0:
		return a.appCfg.Quantum
	case file.Quantum > 0:
		return file.Quantum
	}
	return a.settings.TimeQuantum
}
