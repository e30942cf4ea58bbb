package core

// Cell is the state of one process during one tick.
type Cell byte

const (
	Unmarked Cell = ' '
	Running  Cell = '*'
	Waiting  Cell = '.'
)

// Timeline is the execution grid indexed by [time][process].
type Timeline struct {
	cells [][]Cell
}

func NewTimeline(lastInstant, processCount int) *Timeline {
	cells := make([][]Cell, lastInstant)
	for t := range cells {
		cells[t] = make([]Cell, processCount)
	}
	tl := &Timeline{cells: cells}
	tl.Clear()
	return tl
}

// Len is the number of ticks in the grid.
func (tl *Timeline) Len() int {
	return len(tl.cells)
}

func (tl *Timeline) Clear() {
	for t := range tl.cells {
		for i := range tl.cells[t] {
			tl.cells[t][i] = Unmarked
		}
	}
}

func (tl *Timeline) inRange(time, process int) bool {
	return time >= 0 && time < len(tl.cells) && process >= 0 && process < len(tl.cells[time])
}

// At returns Unmarked for cells outside the grid.
func (tl *Timeline) At(time, process int) Cell {
	if !tl.inRange(time, process) {
		return Unmarked
	}
	return tl.cells[time][process]
}

// MarkRunning drops writes past the horizon.
func (tl *Timeline) MarkRunning(time, process int) {
	if tl.inRange(time, process) {
		tl.cells[time][process] = Running
	}
}

// MarkWaiting never overwrites a Running cell.
func (tl *Timeline) MarkWaiting(time, process int) {
	if tl.inRange(time, process) && tl.cells[time][process] != Running {
		tl.cells[time][process] = Waiting
	}
}

// Row returns the cells of one process across the whole horizon.
func (tl *Timeline) Row(process int) []Cell {
	row := make([]Cell, len(tl.cells))
	for t := range tl.cells {
		row[t] = tl.At(t, process)
	}
	return row
}

// RunningAt returns the process holding the CPU at time, or -1 when idle.
func (tl *Timeline) RunningAt(time int) int {
	if time < 0 || time >= len(tl.cells) {
		return -1
	}
	for i, c := range tl.cells[time] {
		if c == Running {
			return i
		}
	}
	return -1
}

// Count returns how many ticks the process spent in the given state.
func (tl *Timeline) Count(process int, state Cell) int {
	n := 0
	for t := range tl.cells {
		if tl.At(t, process) == state {
			n++
		}
	}
	return n
}
