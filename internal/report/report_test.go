package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

var processes = []scheduler.Process{
	{ProcessID: 1, ArrivalTime: 0, BurstDuration: 5},
	{ProcessID: 2, ArrivalTime: 1, BurstDuration: 3},
	{ProcessID: 3, ArrivalTime: 2, BurstDuration: 8},
	{ProcessID: 4, ArrivalTime: 3, BurstDuration: 6},
}

func TestTitle(t *testing.T) {
	var buf bytes.Buffer
	Title(&buf, "Priority")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", 16), lines[0])
	assert.Contains(t, lines[1], "Priority")
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, scheduler.Timeline{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 5, Stop: 7},
	})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Gantt schedule\n"))
	assert.Contains(t, out, "|   P1   |  idle  |   P2   |")
	assert.Contains(t, out, "0\t2\t5\t7")
}

func TestRun(t *testing.T) {
	res, err := scheduler.Run(processes, scheduler.FCFSPolicy())
	require.NoError(t, err)

	var buf bytes.Buffer
	Run(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "5.75")
	assert.Contains(t, out, "11.25")
	assert.Contains(t, out, "0.18")
}

func TestRun_RoundRobinTitleShowsQuantum(t *testing.T) {
	res, err := scheduler.Run(processes, scheduler.RoundRobinPolicy(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	Run(&buf, res)
	assert.Contains(t, buf.String(), "Round-robin (quantum 2)")
}

func TestComparison(t *testing.T) {
	results, err := scheduler.Compare(context.Background(), processes, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	Comparison(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "RR(q=2)")
	assert.Contains(t, out, "5.25 *", "SJF has the lowest average wait")
	assert.Contains(t, out, "2.00 *", "RR has the lowest average response")
	assert.Contains(t, out, "100%")
}
