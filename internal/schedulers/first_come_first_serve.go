package schedulers

import (
	"cpu-scheduler/internal/core"
)

// FirstComeFirstServe runs processes to completion in table order. The clock
// only jumps forward when the CPU is idle before the next arrival.
func FirstComeFirstServe(sim *core.Simulation) {
	if len(sim.Processes) == 0 {
		return
	}
	clock := sim.Processes[0].ArrivalTime
	for i := range sim.Processes {
		clock = runToCompletion(sim, i, max(clock, sim.Processes[i].ArrivalTime))
	}
}

// runToCompletion executes a process from start without preemption, marks its
// wait since arrival and records the completion. It returns the finish tick.
func runToCompletion(sim *core.Simulation, process, start int) int {
	p := sim.Processes[process]
	for t := p.ArrivalTime; t < start; t++ {
		sim.Timeline.MarkWaiting(t, process)
	}
	finish := start + p.ServiceTime
	for t := start; t < finish; t++ {
		sim.Timeline.MarkRunning(t, process)
	}
	sim.RecordCompletion(process, finish)
	return finish
}
