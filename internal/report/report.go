// Package report renders scheduling results as text: a title banner, a
// Gantt strip and tablewriter tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

const cellWidth = 8

// Run prints the full report for one result.
func Run(w io.Writer, res *scheduler.Result) {
	Title(w, title(res.Policy))
	Gantt(w, res.Timeline)
	Schedule(w, res)
}

func title(p scheduler.Policy) string {
	if p.Algorithm == scheduler.RoundRobin {
		return fmt.Sprintf("%s (quantum %d)", p.Algorithm.Title(), p.Quantum)
	}
	return p.Algorithm.Title()
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

type ganttCell struct {
	label string
	start int64
}

// Gantt prints one cell per slice with the boundary times underneath. Gaps
// where the CPU sat idle get their own cell.
func Gantt(w io.Writer, timeline scheduler.Timeline) {
	var cells []ganttCell
	var clock int64
	for _, s := range timeline {
		if s.Start > clock {
			cells = append(cells, ganttCell{label: "idle", start: clock})
		}
		cells = append(cells, ganttCell{label: fmt.Sprintf("P%d", s.PID), start: s.Start})
		clock = s.Stop
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, c := range cells {
		padding := strings.Repeat(" ", max(cellWidth-len(c.label), 0)/2)
		_, _ = fmt.Fprint(w, padding, c.label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for _, c := range cells {
		_, _ = fmt.Fprint(w, fmt.Sprint(c.start), "\t")
	}
	_, _ = fmt.Fprint(w, fmt.Sprint(timeline.End()))
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Schedule prints the per-process table with averages in the footer.
func Schedule(w io.Writer, res *scheduler.Result) {
	rows := make([][]string, len(res.Processes))
	for i, p := range res.Processes {
		rows[i] = []string{
			fmt.Sprint(p.ProcessID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstDuration),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.Start),
			fmt.Sprint(p.Waiting),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Response),
			fmt.Sprint(p.Finish),
		}
	}

	m := res.Metrics
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", m.AverageResponse),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// Comparison prints one row per result and marks the best average in each
// column with '*'.
func Comparison(w io.Writer, results []*scheduler.Result) {
	best := make(map[scheduler.Metric]*scheduler.Result, len(scheduler.RankingMetrics))
	for _, metric := range scheduler.RankingMetrics {
		best[metric] = scheduler.Best(results, metric)
	}
	cell := func(r *scheduler.Result, metric scheduler.Metric) string {
		s := fmt.Sprintf("%.2f", r.Metrics.Average(metric))
		if best[metric] == r {
			s += " *"
		}
		return s
	}

	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Wait", "Turnaround", "Response", "Makespan", "Utilization", "Throughput", "Switches"})
	for _, r := range results {
		m := r.Metrics
		table.Append([]string{
			r.Policy.String(),
			cell(r, scheduler.MetricWaiting),
			cell(r, scheduler.MetricTurnaround),
			cell(r, scheduler.MetricResponse),
			fmt.Sprint(m.Makespan),
			fmt.Sprintf("%.0f%%", m.Utilization*100),
			fmt.Sprintf("%.2f/t", m.Throughput),
			fmt.Sprint(m.ContextSwitches),
		})
	}
	table.Render()
}
