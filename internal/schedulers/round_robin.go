package schedulers

import (
	"cpu-scheduler/internal/core"
)

type roundRobinSlot struct {
	index     int
	remaining int
}

// RoundRobin serves a FIFO ready queue one tick at a time. The head is sent to
// the back when its quantum expires, and arrivals for the next tick are queued
// before that happens so they are not overtaken by the preempted process.
func RoundRobin(sim *core.Simulation, quantum int) {
	queue := make([]roundRobinSlot, 0, len(sim.Processes))
	incoming := newArrivals(sim.Processes)
	admit := func(i int) {
		queue = append(queue, roundRobinSlot{index: i, remaining: sim.Processes[i].ServiceTime})
	}

	left := quantum
	for t := 0; t < sim.LastInstant; t++ {
		incoming.admitUntil(t, admit)
		if len(queue) == 0 {
			continue
		}

		head := queue[0]
		head.remaining--
		left--
		sim.Timeline.MarkRunning(t, head.index)

		incoming.admitUntil(t+1, admit)

		switch {
		case head.remaining == 0:
			sim.RecordCompletion(head.index, t+1)
			queue = queue[1:]
			left = quantum
		case left == 0:
			queue = append(queue[1:], head)
			left = quantum
		default:
			queue[0] = head
		}
	}
	sim.BackfillWaiting()
}
