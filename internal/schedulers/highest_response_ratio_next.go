package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

type ratioEntry struct {
	name  string
	ratio float64
}

func responseRatio(waitTime, serviceTime int) float64 {
	return float64(waitTime+serviceTime) / float64(serviceTime)
}

// HighestResponseRatioNext recomputes (wait + service) / service for every
// ready process at each decision point and runs the highest to completion.
// Equal ratios keep list order, which is arrival order.
func HighestResponseRatioNext(sim *core.Simulation) {
	ready := make([]ratioEntry, 0, len(sim.Processes))
	incoming := newArrivals(sim.Processes)
	admit := func(i int) {
		ready = append(ready, ratioEntry{name: sim.Processes[i].Name, ratio: 1})
	}

	for t := 0; t < sim.LastInstant; {
		incoming.admitUntil(t, admit)
		if len(ready) == 0 {
			t++
			continue
		}

		for k := range ready {
			i, _ := sim.IndexOf(ready[k].name)
			p := sim.Processes[i]
			ready[k].ratio = responseRatio(t-p.ArrivalTime, p.ServiceTime)
		}
		sort.SliceStable(ready, func(a, b int) bool {
			return ready[a].ratio > ready[b].ratio
		})

		next, _ := sim.IndexOf(ready[0].name)
		ready = ready[1:]
		t = runToCompletion(sim, next, t)
	}
}
