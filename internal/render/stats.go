package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
)

// Stats writes per-process finish, turnaround and normalized turnaround with
// their means. Processes the run never completed show "-".
func Stats(w io.Writer, title string, sim *core.Simulation) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	header := []string{"Process"}
	arrival := []string{"Arrival"}
	service := []string{"Service"}
	finish := []string{"Finish"}
	turnaround := []string{"Turnaround"}
	normTurn := []string{"NormTurn"}

	var turnaroundSum, normSum float64
	completed := 0
	for i, p := range sim.Processes {
		m := sim.Metrics[i]
		header = append(header, p.Name)
		arrival = append(arrival, fmt.Sprint(p.ArrivalTime))
		service = append(service, fmt.Sprint(p.ServiceTime))
		if !m.Completed {
			finish = append(finish, "-")
			turnaround = append(turnaround, "-")
			normTurn = append(normTurn, "-")
			continue
		}
		finish = append(finish, fmt.Sprint(m.FinishTime))
		turnaround = append(turnaround, fmt.Sprint(m.TurnaroundTime))
		normTurn = append(normTurn, fmt.Sprintf("%.2f", m.NormalizedTurnaround))
		turnaroundSum += float64(m.TurnaroundTime)
		normSum += m.NormalizedTurnaround
		completed++
	}

	header = append(header, "Mean")
	arrival = append(arrival, "")
	service = append(service, "")
	finish = append(finish, "")
	if completed > 0 {
		turnaround = append(turnaround, fmt.Sprintf("%.2f", turnaroundSum/float64(completed)))
		normTurn = append(normTurn, fmt.Sprintf("%.2f", normSum/float64(completed)))
	} else {
		turnaround = append(turnaround, "-")
		normTurn = append(normTurn, "-")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk([][]string{arrival, service, finish, turnaround, normTurn})
	table.Render()
	return nil
}
