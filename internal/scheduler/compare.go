package scheduler

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Metric names an average that results can be ranked by.
type Metric string

const (
	MetricWaiting    Metric = "waiting"
	MetricTurnaround Metric = "turnaround"
	MetricResponse   Metric = "response"
)

// RankingMetrics lists the averages Best can rank by.
var RankingMetrics = []Metric{MetricWaiting, MetricTurnaround, MetricResponse}

func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case MetricWaiting, MetricTurnaround, MetricResponse:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, s)
}

// Compare runs every algorithm over the same processes concurrently and
// returns the results in Algorithms order. quantum is used for RoundRobin.
//
// Runs share the input slice read-only; each keeps its own state. The
// context is checked before each run starts, not during one.
func Compare(ctx context.Context, processes []Process, quantum int64) ([]*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	if err := RoundRobinPolicy(quantum).Validate(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(Algorithms))
	g, ctx := errgroup.WithContext(ctx)
	for i, a := range Algorithms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(processes, NewPolicy(a, quantum))
			if err != nil {
				return fmt.Errorf("%s: %w", a, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Best returns the result with the lowest average for metric. Ties go to
// the earlier result. It returns nil for an empty slice.
func Best(results []*Result, metric Metric) *Result {
	var best *Result
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || r.Metrics.Average(metric) < best.Metrics.Average(metric) {
			best = r
		}
	}
	return best
}
