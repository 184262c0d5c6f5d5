package scheduler

import "sort"

// Result is everything one run produces. Processes are reported in input
// order.
type Result struct {
	Policy    Policy
	Timeline  Timeline
	Processes []ProcessResult
	Metrics   Metrics
}

// Run schedules processes under policy. The input is validated up front and
// never modified; once validation passes the run cannot fail.
func Run(processes []Process, policy Policy) (*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	s := newSimulation(processes, policy)
	s.run()
	return s.result(), nil
}

type simulation struct {
	policy     Policy
	processes  []Process
	states     []runState
	order      []int // input positions in stable arrival order
	next       int   // first entry of order not yet admitted
	queue      readyQueue
	clock      int64
	unfinished int
	timeline   Timeline
}

func newSimulation(processes []Process, policy Policy) *simulation {
	states := newRunStates(processes)

	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return processes[order[a]].ArrivalTime < processes[order[b]].ArrivalTime
	})

	return &simulation{
		policy:     policy,
		processes:  processes,
		states:     states,
		order:      order,
		queue:      policy.newQueue(processes, states),
		unfinished: len(processes),
		timeline:   make(Timeline, 0, len(processes)),
	}
}

func (s *simulation) run() {
	for s.unfinished > 0 {
		s.admit()
		if s.queue.len() == 0 {
			// CPU idle: jump straight to the next arrival.
			s.clock = s.processes[s.order[s.next]].ArrivalTime
			continue
		}
		s.dispatch(s.queue.pop())
	}
}

// admit moves every process that has arrived by the current clock into the
// ready queue.
func (s *simulation) admit() {
	for s.next < len(s.order) {
		i := s.order[s.next]
		if s.processes[i].ArrivalTime > s.clock {
			return
		}
		s.queue.push(i)
		s.next++
	}
}

func (s *simulation) dispatch(i int) {
	p := &s.processes[i]
	st := &s.states[i]

	if st.start < 0 {
		st.start = s.clock
	}

	run := st.remaining
	if limit := s.policy.sliceLimit(); limit > 0 && limit < run {
		run = limit
	}

	s.timeline = append(s.timeline, TimeSlice{
		PID:   p.ProcessID,
		Start: s.clock,
		Stop:  s.clock + run,
	})
	st.remaining -= run
	s.clock += run

	if st.remaining == 0 {
		st.finish = s.clock
		s.unfinished--
		return
	}

	// Arrivals during the slice queue ahead of the preempted process.
	s.admit()
	s.queue.push(i)
}

func (s *simulation) result() *Result {
	results := make([]ProcessResult, len(s.processes))
	for i := range s.processes {
		results[i] = newProcessResult(s.processes[i], s.states[i])
	}
	return &Result{
		Policy:    s.policy,
		Timeline:  s.timeline,
		Processes: results,
		Metrics:   Summarize(results, s.timeline),
	}
}
