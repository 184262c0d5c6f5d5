package scheduler

import "fmt"

// Metrics aggregates one run. Averages are simple means over ProcessCount.
type Metrics struct {
	ProcessCount    int
	TotalWaiting    int64
	TotalTurnaround int64
	TotalResponse   int64

	AverageWaiting    float64
	AverageTurnaround float64
	AverageResponse   float64

	Makespan        int64
	IdleTime        int64
	Utilization     float64
	Throughput      float64
	ContextSwitches int
}

// newProcessResult derives the per-process times from a finished run state.
func newProcessResult(p Process, st runState) ProcessResult {
	if st.finish < 0 {
		panic(fmt.Sprintf("scheduler: process %d has not finished", p.ProcessID))
	}
	return ProcessResult{
		Process:    p,
		Start:      st.start,
		Finish:     st.finish,
		Waiting:    st.finish - p.ArrivalTime - p.BurstDuration,
		Turnaround: st.finish - p.ArrivalTime,
		Response:   st.start - p.ArrivalTime,
	}
}

// Summarize computes the aggregate metrics of a completed run. It is a pure
// function of its arguments. Every result must have finished; an unfinished
// record is a programming error and panics.
func Summarize(results []ProcessResult, timeline Timeline) Metrics {
	m := Metrics{ProcessCount: len(results)}
	if len(results) == 0 {
		return m
	}

	for i := range results {
		r := results[i]
		if r.Finish < 0 {
			panic(fmt.Sprintf("scheduler: process %d has not finished", r.ProcessID))
		}
		m.TotalWaiting += r.Finish - r.ArrivalTime - r.BurstDuration
		m.TotalTurnaround += r.Finish - r.ArrivalTime
		m.TotalResponse += r.Start - r.ArrivalTime
		if r.Finish > m.Makespan {
			m.Makespan = r.Finish
		}
	}

	count := float64(m.ProcessCount)
	m.AverageWaiting = float64(m.TotalWaiting) / count
	m.AverageTurnaround = float64(m.TotalTurnaround) / count
	m.AverageResponse = float64(m.TotalResponse) / count

	busy := timeline.Busy()
	m.IdleTime = m.Makespan - busy
	if m.Makespan > 0 {
		m.Utilization = float64(busy) / float64(m.Makespan)
		m.Throughput = count / float64(m.Makespan)
	}
	m.ContextSwitches = timeline.ContextSwitches()
	return m
}

// Average returns the mean for one of the comparable metrics.
func (m Metrics) Average(metric Metric) float64 {
	switch metric {
	case MetricTurnaround:
		return m.AverageTurnaround
	case MetricResponse:
		return m.AverageResponse
	}
	return m.AverageWaiting
}
