package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// Schedule runs one algorithm on a fresh simulation and summarizes it.
func Schedule(processes []core.Process, lastInstant int, id byte, quantum int, withTimeline bool) (responses.ScheduleResponse, error) {
	algorithm, err := Lookup(id)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	sim := core.NewSimulation(processes, lastInstant)
	if err := algorithm.Run(sim, quantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(sim, algorithm, quantum, withTimeline), nil
}
