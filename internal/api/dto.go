package api

import (
	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

type ProcessRequest struct {
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
	Priority    int64 `json:"priority"`
}

// ScheduleRequest is the body of both endpoints. Algorithm is ignored by
// /compare; a nil Quantum means the configured default.
type ScheduleRequest struct {
	Algorithm string           `json:"algorithm"`
	Quantum   *int64           `json:"quantum"`
	Processes []ProcessRequest `json:"processes"`
}

// processes assigns ids in request order.
func (r *ScheduleRequest) processes() ([]scheduler.Process, error) {
	w := scheduler.NewWorkload()
	for _, p := range r.Processes {
		if _, err := w.Add(p.ArrivalTime, p.BurstTime, p.Priority); err != nil {
			return nil, err
		}
	}
	return w.Processes(), nil
}

func (r *ScheduleRequest) quantum(fallback int64) int64 {
	if r.Quantum == nil {
		return fallback
	}
	return *r.Quantum
}

type SliceResponse struct {
	PID   int64 `json:"pid"`
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

type ProcessResponse struct {
	PID            int64 `json:"pid"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	Priority       int64 `json:"priority"`
	StartTime      int64 `json:"start_time"`
	CompletionTime int64 `json:"completion_time"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
	ResponseTime   int64 `json:"response_time"`
}

type MetricsResponse struct {
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	TotalTime             int64   `json:"total_time"`
	IdleTime              int64   `json:"idle_time"`
	CPUUtilization        float64 `json:"cpu_utilization"`
	Throughput            float64 `json:"throughput"`
	ContextSwitches       int     `json:"context_switches"`
}

type ScheduleResponse struct {
	Algorithm string            `json:"algorithm"`
	Quantum   int64             `json:"quantum,omitempty"`
	Timeline  []SliceResponse   `json:"timeline"`
	Processes []ProcessResponse `json:"processes"`
	Metrics   MetricsResponse   `json:"metrics"`
}

// CompareResponse lists one result per algorithm. Best maps each ranking
// metric to the winning algorithm's name.
type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
	Best    map[string]string  `json:"best"`
}

func newScheduleResponse(res *scheduler.Result) ScheduleResponse {
	out := ScheduleResponse{
		Algorithm: algorithmName(res.Policy.Algorithm),
		Quantum:   res.Policy.Quantum,
		Timeline:  make([]SliceResponse, len(res.Timeline)),
		Processes: make([]ProcessResponse, len(res.Processes)),
	}
	for i, s := range res.Timeline {
		out.Timeline[i] = SliceResponse{PID: s.PID, Start: s.Start, Stop: s.Stop}
	}
	for i, p := range res.Processes {
		out.Processes[i] = ProcessResponse{
			PID:            p.ProcessID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstDuration,
			Priority:       p.Priority,
			StartTime:      p.Start,
			CompletionTime: p.Finish,
			WaitingTime:    p.Waiting,
			TurnaroundTime: p.Turnaround,
			ResponseTime:   p.Response,
		}
	}
	m := res.Metrics
	out.Metrics = MetricsResponse{
		AverageWaitingTime:    m.AverageWaiting,
		AverageTurnaroundTime: m.AverageTurnaround,
		AverageResponseTime:   m.AverageResponse,
		TotalTime:             m.Makespan,
		IdleTime:              m.IdleTime,
		CPUUtilization:        m.Utilization,
		Throughput:            m.Throughput,
		ContextSwitches:       m.ContextSwitches,
	}
	return out
}

func newCompareResponse(results []*scheduler.Result) CompareResponse {
	out := CompareResponse{
		Results: make([]ScheduleResponse, len(results)),
		Best:    make(map[string]string, len(scheduler.RankingMetrics)),
	}
	for i, r := range results {
		out.Results[i] = newScheduleResponse(r)
	}
	for _, metric := range scheduler.RankingMetrics {
		if best := scheduler.Best(results, metric); best != nil {
			out.Best[string(metric)] = algorithmName(best.Policy.Algorithm)
		}
	}
	return out
}

func algorithmName(a scheduler.Algorithm) string {
	text, _ := a.MarshalText()
	return string(text)
}
