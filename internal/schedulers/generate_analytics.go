package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse summarizes a finished run.
func GenerateResponse(sim *core.Simulation, algorithm Algorithm, quantum int, withTimeline bool) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, len(sim.Processes))
	for i := range sim.Processes {
		details[i] = generateProcessDetails(sim, i)
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime, averageNormalized := util.CalculateAverage(details)

	totalTime, idleTime := cpuTimes(sim.Timeline)
	response := responses.ScheduleResponse{
		Algorithm:                   algorithm.Title(quantum),
		TotalTime:                   float64(totalTime),
		IdleTime:                    float64(idleTime),
		AverageWaitingTime:          averageWaitingTime,
		AverageResponseTime:         averageResponseTime,
		AverageTurnAroundTime:       averageTurnAroundTime,
		AverageNormalizedTurnAround: averageNormalized,
		Details:                     details,
	}
	if algorithm.Quantized {
		response.Quantum = quantum
	}
	if totalTime > 0 {
		response.CpuUtilization = 1 - float64(idleTime)/float64(totalTime)
		response.CpuThroughput = float64(completedCount(sim)) / float64(totalTime)
	}
	if withTimeline {
		response.Timeline = timelineRows(sim)
	}
	return response
}

func generateProcessDetails(sim *core.Simulation, process int) responses.ProcessResponse {
	p := sim.Processes[process]
	m := sim.Metrics[process]
	details := responses.ProcessResponse{
		Name:        p.Name,
		ArrivalTime: p.ArrivalTime,
		ServiceTime: p.ServiceTime,
		Completed:   m.Completed,
	}
	if !m.Completed {
		return details
	}
	details.FinishTime = m.FinishTime
	details.TurnAroundTime = float64(m.TurnaroundTime)
	details.NormalizedTurnAround = m.NormalizedTurnaround
	details.WaitingTime = float64(m.TurnaroundTime - p.ServiceTime)
	for t := p.ArrivalTime; t < m.FinishTime; t++ {
		if sim.Timeline.At(t, process) == core.Running {
			details.ResponseTime = float64(t - p.ArrivalTime)
			break
		}
	}
	return details
}

// cpuTimes returns the tick after the last busy one, and how many ticks
// before it the CPU sat idle.
func cpuTimes(tl *core.Timeline) (total, idle int) {
	for t := 0; t < tl.Len(); t++ {
		if tl.RunningAt(t) >= 0 {
			total = t + 1
		}
	}
	for t := 0; t < total; t++ {
		if tl.RunningAt(t) < 0 {
			idle++
		}
	}
	return total, idle
}

func completedCount(sim *core.Simulation) int {
	n := 0
	for _, m := range sim.Metrics {
		if m.Completed {
			n++
		}
	}
	return n
}

func timelineRows(sim *core.Simulation) []responses.TimelineRow {
	rows := make([]responses.TimelineRow, len(sim.Processes))
	for i, p := range sim.Processes {
		cells := sim.Timeline.Row(i)
		b := make([]byte, len(cells))
		for t, c := range cells {
			b[t] = byte(c)
		}
		rows[i] = responses.TimelineRow{Name: p.Name, Cells: string(b)}
	}
	return rows
}
