package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrInvalidQuantum   = errors.New("invalid time quantum")
)

// Algorithm is one entry of the policy registry.
type Algorithm struct {
	ID   byte
	Name string
	// Quantized policies take a time quantum.
	Quantized bool

	run func(sim *core.Simulation, quantum int)
}

func withoutQuantum(policy func(sim *core.Simulation)) func(*core.Simulation, int) {
	return func(sim *core.Simulation, _ int) { policy(sim) }
}

var algorithms = []Algorithm{
	{ID: '1', Name: "FCFS", run: withoutQuantum(FirstComeFirstServe)},
	{ID: '2', Name: "RR", Quantized: true, run: RoundRobin},
	{ID: '3', Name: "SPN", run: withoutQuantum(ShortestProcessNext)},
	{ID: '4', Name: "SRT", run: withoutQuantum(ShortestRemainingTime)},
	{ID: '5', Name: "HRRN", run: withoutQuantum(HighestResponseRatioNext)},
	{ID: '6', Name: "FB-1", run: withoutQuantum(FeedbackQuantumOne)},
	{ID: '7', Name: "FB-2i", run: withoutQuantum(FeedbackExponential)},
	{ID: '8', Name: "Aging", Quantized: true, run: Aging},
}

// Algorithms lists the registry in id order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

func Lookup(id byte) (Algorithm, error) {
	for _, a := range algorithms {
		if a.ID == id {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
}

// Title is the display name; round robin carries its quantum, e.g. "RR-4".
func (a Algorithm) Title(quantum int) string {
	if a.ID == '2' {
		return fmt.Sprintf("%s-%d", a.Name, quantum)
	}
	return a.Name
}

// Run clears the simulation and fills it with this policy's schedule.
func (a Algorithm) Run(sim *core.Simulation, quantum int) error {
	if a.Quantized && quantum <= 0 {
		return fmt.Errorf("%w: %s needs a positive quantum, got %d", ErrInvalidQuantum, a.Name, quantum)
	}
	sim.Reset()
	a.run(sim, quantum)
	return nil
}
