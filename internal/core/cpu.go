package core

// Metrics are written once per process, when the process completes.
type Metrics struct {
	FinishTime           int
	TurnaroundTime       int
	NormalizedTurnaround float64
	Completed            bool
}

// Simulation is the state one policy run owns: the read-only process table
// plus the timeline and metrics it fills. Reset clears it between runs.
type Simulation struct {
	Processes   []Process
	LastInstant int
	Timeline    *Timeline
	Metrics     []Metrics

	index map[string]int
}

func NewSimulation(processes []Process, lastInstant int) *Simulation {
	index := make(map[string]int, len(processes))
	for i, p := range processes {
		index[p.Name] = i
	}
	return &Simulation{
		Processes:   processes,
		LastInstant: lastInstant,
		Timeline:    NewTimeline(lastInstant, len(processes)),
		Metrics:     make([]Metrics, len(processes)),
		index:       index,
	}
}

func (s *Simulation) Reset() {
	s.Timeline.Clear()
	for i := range s.Metrics {
		s.Metrics[i] = Metrics{}
	}
}

// IndexOf maps a process name to its row in the table.
func (s *Simulation) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

func (s *Simulation) RecordCompletion(process, finishTime int) {
	p := s.Processes[process]
	turnaround := finishTime - p.ArrivalTime
	s.Metrics[process] = Metrics{
		FinishTime:           finishTime,
		TurnaroundTime:       turnaround,
		NormalizedTurnaround: float64(turnaround) / float64(p.ServiceTime),
		Completed:            true,
	}
}

// BackfillWaiting marks every non-running tick between arrival and finish of
// each completed process as waiting.
func (s *Simulation) BackfillWaiting() {
	for i, m := range s.Metrics {
		if m.Completed {
			s.BackfillWaitingUntil(i, m.FinishTime)
		}
	}
}

func (s *Simulation) BackfillWaitingUntil(process, end int) {
	for t := s.Processes[process].ArrivalTime; t < end; t++ {
		s.Timeline.MarkWaiting(t, process)
	}
}
