package schedulers

import (
	"cpu-scheduler/internal/core"
)

// maxDoublingLevel bounds 1<<level. Beyond it the slice covers any remaining
// service time a horizon can hold.
const maxDoublingLevel = 30

// FeedbackQuantumOne is multilevel feedback where every level gets one tick.
func FeedbackQuantumOne(sim *core.Simulation) {
	feedback(sim, func(int) int { return 1 })
}

// FeedbackExponential is multilevel feedback where level i gets 2^i ticks.
func FeedbackExponential(sim *core.Simulation) {
	feedback(sim, func(level int) int {
		if level >= maxDoublingLevel {
			return 1 << maxDoublingLevel
		}
		return 1 << level
	})
}

// feedback dispatches the lowest (level, index) process for its level's
// slice. A process that uses its whole slice drops one level only when
// another process is waiting; alone it keeps its level.
func feedback(sim *core.Simulation, slice func(level int) int) {
	ready := &readyQueue{}
	remaining := make([]int, len(sim.Processes))
	incoming := newArrivals(sim.Processes)
	admit := func(i int) {
		remaining[i] = sim.Processes[i].ServiceTime
		ready.push(0, i)
	}

	for t := 0; t < sim.LastInstant; {
		incoming.admitUntil(t, admit)
		if ready.Len() == 0 {
			t++
			continue
		}

		next := ready.pop()
		end := runSlice(sim, next.index, t, min(slice(next.key), remaining[next.index]))
		remaining[next.index] -= end - t
		t = end

		incoming.admitUntil(t, admit)
		if remaining[next.index] == 0 {
			sim.RecordCompletion(next.index, t)
			continue
		}
		level := next.key
		if ready.Len() > 0 {
			level++
		}
		ready.push(level, next.index)
	}
	sim.BackfillWaiting()
}

// runSlice marks ticks [start, start+length) as running and returns the tick
// the slice ends at.
func runSlice(sim *core.Simulation, process, start, length int) int {
	end := start + length
	for t := start; t < end; t++ {
		sim.Timeline.MarkRunning(t, process)
	}
	return end
}
