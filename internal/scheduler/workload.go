package scheduler

// Workload accumulates processes for scheduling and hands out process ids in
// creation order, starting at 1. The zero value is ready to use.
type Workload struct {
	processes []Process
	horizon   horizon
}

func NewWorkload() *Workload {
	return &Workload{}
}

// Add validates and appends a new process. Nothing is recorded when the
// input is rejected.
func (w *Workload) Add(arrival, burst, priority int64) (Process, error) {
	p := Process{
		ProcessID:     int64(len(w.processes)) + 1,
		ArrivalTime:   arrival,
		BurstDuration: burst,
		Priority:      priority,
	}
	if err := validateProcess(p); err != nil {
		return Process{}, err
	}
	if err := w.horizon.add(p); err != nil {
		return Process{}, err
	}
	w.processes = append(w.processes, p)
	return p, nil
}

// Processes returns a copy of the processes added so far.
func (w *Workload) Processes() []Process {
	out := make([]Process, len(w.processes))
	copy(out, w.processes)
	return out
}

func (w *Workload) Len() int {
	return len(w.processes)
}

// Clear drops every process and restarts id assignment at 1.
func (w *Workload) Clear() {
	w.processes = nil
	w.horizon = horizon{}
}
