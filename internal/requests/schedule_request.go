package requests

import "cpu-scheduler/internal/core"

type Process struct {
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	ServiceTime int    `json:"service_time"`
	// Priority defaults to ServiceTime, as in the text input format.
	Priority *int `json:"priority,omitempty"`
}

type ScheduleRequest struct {
	Processes   []Process `json:"processes"`
	LastInstant int       `json:"last_instant"`
	Quantum     int       `json:"quantum"`
	Operation   string    `json:"operation"`
}

func (r *ScheduleRequest) CoreProcesses() []core.Process {
	out := make([]core.Process, len(r.Processes))
	for i, p := range r.Processes {
		priority := p.ServiceTime
		if p.Priority != nil {
			priority = *p.Priority
		}
		out[i] = core.Process{
			Name:        p.Name,
			ArrivalTime: p.ArrivalTime,
			ServiceTime: p.ServiceTime,
			Priority:    priority,
		}
	}
	return out
}

// Horizon is the requested last instant, or the smallest one that fits.
func (r *ScheduleRequest) Horizon(processes []core.Process) int {
	if r.LastInstant > 0 {
		return r.LastInstant
	}
	return core.RequiredHorizon(processes)
}

func (r *ScheduleRequest) WithTimeline() bool {
	return r.Operation == "trace"
}
