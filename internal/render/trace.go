package render

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/core"
)

const rule = "------------------------------------------------"

// Trace writes the tick-by-tick timeline: one row per process, one cell per
// tick, '*' running and '.' waiting.
func Trace(w io.Writer, title string, sim *core.Simulation) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%-6s", title)
	for t := 0; t <= sim.LastInstant; t++ {
		fmt.Fprintf(b, "%d ", t%10)
	}
	b.WriteString("\n" + rule + "\n")
	for i, p := range sim.Processes {
		fmt.Fprintf(b, "%-6s|", p.Name)
		for _, c := range sim.Timeline.Row(i) {
			b.WriteByte(byte(c))
			b.WriteByte('|')
		}
		b.WriteString(" \n")
	}
	b.WriteString(rule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
