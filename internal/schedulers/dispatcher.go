package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Request asks for one run of an algorithm.
type Request struct {
	ID      byte
	Quantum int
}

// Visit receives the simulation right after a run, before the next run
// clears it.
type Visit func(algorithm Algorithm, quantum int, sim *core.Simulation) error

type Dispatcher struct {
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Run executes the requests in order. A request that names an unknown
// algorithm or an unusable quantum is logged and skipped; an error from visit
// stops the loop.
func (d *Dispatcher) Run(sim *core.Simulation, requests []Request, visit Visit) error {
	for _, req := range requests {
		algorithm, err := Lookup(req.ID)
		if err != nil {
			d.logger.Warn("skipping run", util.ErrAttr(err))
			continue
		}
		if err := algorithm.Run(sim, req.Quantum); err != nil {
			d.logger.Warn("skipping run", slog.String("algorithm", algorithm.Name), util.ErrAttr(err))
			continue
		}
		d.logger.Debug("run finished",
			slog.String("algorithm", algorithm.Title(req.Quantum)),
			slog.Int("processes", len(sim.Processes)),
			slog.Int("last_instant", sim.LastInstant),
		)
		if err := visit(algorithm, req.Quantum, sim); err != nil {
			return err
		}
	}
	return nil
}
