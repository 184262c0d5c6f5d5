package scheduler

import (
	"fmt"
	"math"
)

type (
	// Process is the immutable description of one job. Lower Priority values
	// are scheduled first.
	Process struct {
		ProcessID     int64
		ArrivalTime   int64
		BurstDuration int64
		Priority      int64
	}

	// ProcessResult is a Process together with the times one run derived
	// for it.
	ProcessResult struct {
		Process
		Start      int64
		Finish     int64
		Waiting    int64
		Turnaround int64
		Response   int64
	}
)

// runState is the simulation-owned state of one process. A fresh slice of
// these is built for every run, parallel to the input slice.
type runState struct {
	remaining int64
	start     int64
	finish    int64
}

func newRunStates(processes []Process) []runState {
	states := make([]runState, len(processes))
	for i := range processes {
		states[i] = runState{
			remaining: processes[i].BurstDuration,
			start:     -1,
			finish:    -1,
		}
	}
	return states
}

func validateProcess(p Process) error {
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: arrival time must be >= 0, got %d", ErrInvalidInput, p.ArrivalTime)
	}
	if p.BurstDuration <= 0 {
		return fmt.Errorf("%w: burst time must be > 0, got %d", ErrInvalidInput, p.BurstDuration)
	}
	return nil
}

func validateProcesses(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[int64]struct{}, len(processes))
	var h horizon
	for i := range processes {
		p := processes[i]
		if p.ProcessID <= 0 {
			return fmt.Errorf("%w: process %d has non-positive id %d", ErrInvalidInput, i, p.ProcessID)
		}
		if _, dup := seen[p.ProcessID]; dup {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.ProcessID)
		}
		seen[p.ProcessID] = struct{}{}
		if err := validateProcess(p); err != nil {
			return fmt.Errorf("process %d: %w", p.ProcessID, err)
		}
		if err := h.add(p); err != nil {
			return fmt.Errorf("process %d: %w", p.ProcessID, err)
		}
	}
	return nil
}

// horizon tracks the latest arrival and the total burst of a set of
// processes. Their sum bounds every clock value a run can reach, so it must
// fit in an int64.
type horizon struct {
	latestArrival int64
	totalBurst    int64
}

// add accounts for p, which must already be valid. h is unchanged on error.
func (h *horizon) add(p Process) error {
	total := h.totalBurst + p.BurstDuration
	if total < h.totalBurst {
		return fmt.Errorf("%w: total burst time overflows", ErrInvalidInput)
	}
	latest := max(h.latestArrival, p.ArrivalTime)
	if latest > math.MaxInt64-total {
		return fmt.Errorf("%w: latest arrival %d plus total burst %d overflows the clock", ErrInvalidInput, latest, total)
	}
	h.latestArrival, h.totalBurst = latest, total
	return nil
}
