package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

type agingEntry struct {
	index    int
	priority int
	waited   int
}

// Aging is quantum-driven priority scheduling. At each decision point the
// process that just ran drops back to its base priority while every other
// ready process gains one, so a low-priority process cannot starve. Processes
// are never retired: the CPU is shared until the horizon, and sim.Metrics are
// left without completions.
func Aging(sim *core.Simulation, quantum int) {
	queue := make([]agingEntry, 0, len(sim.Processes))
	incoming := newArrivals(sim.Processes)
	admit := func(i int) {
		queue = append(queue, agingEntry{index: i, priority: sim.Processes[i].Priority})
	}

	current := -1
	for t := 0; t < sim.LastInstant; {
		incoming.admitUntil(t, admit)
		if len(queue) == 0 {
			t++
			continue
		}

		for k := range queue {
			if queue[k].index == current {
				queue[k].priority = sim.Processes[current].Priority
				queue[k].waited = 0
				continue
			}
			queue[k].priority++
			queue[k].waited++
		}
		sort.SliceStable(queue, func(a, b int) bool {
			if queue[a].priority != queue[b].priority {
				return queue[a].priority > queue[b].priority
			}
			return queue[a].waited > queue[b].waited
		})

		current = queue[0].index
		t = runSlice(sim, current, t, min(quantum, sim.LastInstant-t))
	}

	for i := range sim.Processes {
		sim.BackfillWaitingUntil(i, sim.LastInstant)
	}
}
