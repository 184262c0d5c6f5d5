package scheduler

import (
	"fmt"
	"strings"
)

// Algorithm names a scheduling discipline.
type Algorithm int

const (
	FCFS Algorithm = iota + 1
	SJF
	RoundRobin
	Priority
)

// Algorithms lists every discipline in reporting order.
var Algorithms = []Algorithm{FCFS, SJF, RoundRobin, Priority}

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case RoundRobin:
		return "RR"
	case Priority:
		return "Priority"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Title is the human-readable heading used in reports.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First-come, first-serve"
	case SJF:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority"
	}
	return a.String()
}

// ParseAlgorithm accepts the short and long names of each discipline,
// case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve":
		return FCFS, nil
	case "sjf", "shortest-job-first":
		return SJF, nil
	case "rr", "round-robin", "roundrobin":
		return RoundRobin, nil
	case "priority", "prio":
		return Priority, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(a.String())), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Policy selects the discipline for one run. Quantum is only meaningful for
// RoundRobin and is ignored otherwise.
type Policy struct {
	Algorithm Algorithm
	Quantum   int64
}

func FCFSPolicy() Policy     { return Policy{Algorithm: FCFS} }
func SJFPolicy() Policy      { return Policy{Algorithm: SJF} }
func PriorityPolicy() Policy { return Policy{Algorithm: Priority} }

func RoundRobinPolicy(quantum int64) Policy {
	return Policy{Algorithm: RoundRobin, Quantum: quantum}
}

// NewPolicy builds the policy for a, dropping quantum unless a is RoundRobin.
func NewPolicy(a Algorithm, quantum int64) Policy {
	if a == RoundRobin {
		return RoundRobinPolicy(quantum)
	}
	return Policy{Algorithm: a}
}

func (p Policy) Validate() error {
	switch p.Algorithm {
	case FCFS, SJF, Priority:
		return nil
	case RoundRobin:
		if p.Quantum <= 0 {
			return fmt.Errorf("%w, got %d", ErrInvalidQuantum, p.Quantum)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, p.Algorithm)
}

func (p Policy) String() string {
	if p.Algorithm == RoundRobin {
		return fmt.Sprintf("RR(q=%d)", p.Quantum)
	}
	return p.Algorithm.String()
}

// Dispatches returns how many slices a run of processes under p will emit:
// one per process, or for RoundRobin one per started quantum. p must be
// valid.
func (p Policy) Dispatches(processes []Process) int64 {
	limit := p.sliceLimit()
	if limit <= 0 {
		return int64(len(processes))
	}
	var n int64
	for i := range processes {
		n += (processes[i].BurstDuration-1)/limit + 1
	}
	return n
}

// sliceLimit caps how long a dispatched process may run before it is
// preempted. Zero means it runs to completion.
func (p Policy) sliceLimit() int64 {
	if p.Algorithm == RoundRobin {
		return p.Quantum
	}
	return 0
}

// newQueue returns the ready queue for p. FCFS and RoundRobin serve in
// admission order, which is already stable arrival order.
func (p Policy) newQueue(processes []Process, states []runState) readyQueue {
	switch p.Algorithm {
	case SJF:
		return newHeapQueue(byRemainingTime, processes, states)
	case Priority:
		return newHeapQueue(byPriority, processes, states)
	}
	return &fifoQueue{}
}

// comparator orders ready processes by one key, breaking ties by arrival
// time and then by input position.
type comparator struct {
	key func(p *Process, s *runState) int64
}

var (
	byRemainingTime = comparator{
		key: func(_ *Process, s *runState) int64 { return s.remaining },
	}
	byPriority = comparator{
		key: func(p *Process, _ *runState) int64 { return p.Priority },
	}
)

func (c comparator) less(processes []Process, states []runState, i, j int) bool {
	if ki, kj := c.key(&processes[i], &states[i]), c.key(&processes[j], &states[j]); ki != kj {
		return ki < kj
	}
	if ai, aj := processes[i].ArrivalTime, processes[j].ArrivalTime; ai != aj {
		return ai < aj
	}
	return i < j
}
