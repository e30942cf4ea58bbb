package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ShortestProcessNext picks the arrived process with the least service time,
// lowest index on ties, and runs it to completion.
func ShortestProcessNext(sim *core.Simulation) {
	ready := &readyQueue{}
	incoming := newArrivals(sim.Processes)
	byServiceTime := func(i int) {
		ready.push(sim.Processes[i].ServiceTime, i)
	}

	for t := 0; t < sim.LastInstant; {
		incoming.admitUntil(t, byServiceTime)
		if ready.Len() == 0 {
			t++
			continue
		}
		t = runToCompletion(sim, ready.pop().index, t)
	}
}
