package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ShortestRemainingTime re-evaluates the ready queue every tick, keyed by
// remaining service time, so a shorter arrival preempts at the next tick.
func ShortestRemainingTime(sim *core.Simulation) {
	ready := &readyQueue{}
	incoming := newArrivals(sim.Processes)
	byRemainingTime := func(i int) {
		ready.push(sim.Processes[i].ServiceTime, i)
	}

	for t := 0; t < sim.LastInstant; t++ {
		incoming.admitUntil(t, byRemainingTime)
		if ready.Len() == 0 {
			continue
		}
		next := ready.pop()
		sim.Timeline.MarkRunning(t, next.index)
		if next.key == 1 {
			sim.RecordCompletion(next.index, t+1)
			continue
		}
		ready.push(next.key-1, next.index)
	}
	sim.BackfillWaiting()
}
