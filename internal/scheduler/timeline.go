package scheduler

import "fmt"

// TimeSlice is one contiguous stretch of CPU time given to a process.
type TimeSlice struct {
	PID   int64
	Start int64
	Stop  int64
}

func (s TimeSlice) Duration() int64 { return s.Stop - s.Start }

// Timeline is the ordered execution history of a run, suitable for drawing
// as a Gantt chart.
type Timeline []TimeSlice

// Busy is the total time the CPU was occupied.
func (t Timeline) Busy() int64 {
	var busy int64
	for _, s := range t {
		busy += s.Duration()
	}
	return busy
}

// End is the stop time of the last slice, or 0 for an empty timeline.
func (t Timeline) End() int64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Stop
}

// ContextSwitches counts the dispatches that hand the CPU to a different
// process than the previous slice.
func (t Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t); i++ {
		if t[i].PID != t[i-1].PID {
			switches++
		}
	}
	return switches
}

func (t Timeline) ByPID() map[int64][]TimeSlice {
	out := make(map[int64][]TimeSlice)
	for _, s := range t {
		out[s.PID] = append(out[s.PID], s)
	}
	return out
}

// Validate checks that every slice has positive length and that slices are
// chronological and never overlap.
func (t Timeline) Validate() error {
	for i, s := range t {
		if s.Stop <= s.Start {
			return fmt.Errorf("%w: slice %d for pid %d has non-positive length [%d,%d]", ErrInvalidTimeline, i, s.PID, s.Start, s.Stop)
		}
		if i > 0 && s.Start < t[i-1].Stop {
			return fmt.Errorf("%w: slice %d for pid %d starts at %d before previous slice stops at %d", ErrInvalidTimeline, i, s.PID, s.Start, t[i-1].Stop)
		}
	}
	return nil
}
