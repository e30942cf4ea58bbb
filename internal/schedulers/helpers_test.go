package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

// stallings is the five-process workload of the classic textbook comparison.
func stallings() []core.Process {
	return []core.Process{
		{Name: "A", ArrivalTime: 0, ServiceTime: 3, Priority: 3},
		{Name: "B", ArrivalTime: 2, ServiceTime: 6, Priority: 6},
		{Name: "C", ArrivalTime: 4, ServiceTime: 4, Priority: 4},
		{Name: "D", ArrivalTime: 6, ServiceTime: 5, Priority: 5},
		{Name: "E", ArrivalTime: 8, ServiceTime: 2, Priority: 2},
	}
}

func rows(sim *core.Simulation) []string {
	out := make([]string, len(sim.Processes))
	for i := range sim.Processes {
		b := make([]byte, 0, sim.LastInstant)
		for _, c := range sim.Timeline.Row(i) {
			b = append(b, byte(c))
		}
		out[i] = string(b)
	}
	return out
}

func finishTimes(sim *core.Simulation) []int {
	out := make([]int, len(sim.Metrics))
	for i, m := range sim.Metrics {
		out[i] = m.FinishTime
	}
	return out
}

// assertCompletedSchedule checks what every completing policy guarantees.
func assertCompletedSchedule(t *testing.T, sim *core.Simulation) {
	t.Helper()
	for i, p := range sim.Processes {
		m := sim.Metrics[i]
		if !assert.Truef(t, m.Completed, "%s never completed", p.Name) {
			continue
		}
		assert.GreaterOrEqual(t, m.FinishTime, p.ArrivalTime+p.ServiceTime, p.Name)
		assert.Equal(t, m.FinishTime-p.ArrivalTime, m.TurnaroundTime, p.Name)
		assert.InDelta(t, float64(m.TurnaroundTime)/float64(p.ServiceTime), m.NormalizedTurnaround, 1e-9, p.Name)
		assert.GreaterOrEqual(t, m.NormalizedTurnaround, 1.0, p.Name)
		assert.Equal(t, p.ServiceTime, sim.Timeline.Count(i, core.Running), p.Name)

		for tick := 0; tick < sim.LastInstant; tick++ {
			active := tick >= p.ArrivalTime && tick < m.FinishTime
			cell := sim.Timeline.At(tick, i)
			if active {
				assert.NotEqualf(t, core.Unmarked, cell, "%s unmarked at %d", p.Name, tick)
			} else {
				assert.Equalf(t, core.Unmarked, cell, "%s marked at %d", p.Name, tick)
			}
		}
	}
	for tick := 0; tick < sim.LastInstant; tick++ {
		running := 0
		for i := range sim.Processes {
			if sim.Timeline.At(tick, i) == core.Running {
				running++
			}
		}
		assert.LessOrEqualf(t, running, 1, "tick %d", tick)
	}
}

// runBursts counts the separate stretches of running ticks of a process.
func runBursts(sim *core.Simulation, process int) int {
	bursts := 0
	prev := core.Unmarked
	for _, c := range sim.Timeline.Row(process) {
		if c == core.Running && prev != core.Running {
			bursts++
		}
		prev = c
	}
	return bursts
}
