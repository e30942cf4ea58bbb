package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/parser"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

// Usage:
//
//	cpu-scheduler [input-file]   simulate the input (stdin when omitted)
//	cpu-scheduler serve          start the HTTP API
func main() {
	cfg := config.GetSchedulerConfig()
	logger := util.BuildLogger(cfg.LogLevel)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		app := api.NewApp(cfg, logger)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logger.Error("server stopped", util.ErrAttr(err))
			os.Exit(1)
		}
		return
	}

	if err := simulate(os.Args[1:], logger); err != nil {
		logger.Error("simulation aborted", util.ErrAttr(err))
		os.Exit(1)
	}
}

func simulate(args []string, logger *slog.Logger) error {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	input, err := parser.Parse(in)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	sim := core.NewSimulation(input.Processes, input.LastInstant)
	dispatcher := schedulers.NewDispatcher(logger)
	return dispatcher.Run(sim, input.Algorithms, func(algorithm schedulers.Algorithm, quantum int, sim *core.Simulation) error {
		if err := renderRun(out, input.Operation, algorithm.Title(quantum), sim); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	})
}

func renderRun(w io.Writer, op parser.Operation, title string, sim *core.Simulation) error {
	if op == parser.Trace {
		return render.Trace(w, title, sim)
	}
	return render.Stats(w, title, sim)
}
