package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidProcess  = errors.New("invalid process")
	ErrHorizonTooSmall = errors.New("horizon too small")
	ErrHorizonOverflow = errors.New("horizon overflows int")
)

// Process is one row of the process table. It is never modified once loaded.
type Process struct {
	Name        string
	ArrivalTime int
	ServiceTime int
	// Priority is the base priority used by aging.
	Priority int
}

// RequiredHorizon returns the tick at which a work-conserving policy finishes
// the last process. Every policy that runs processes to completion fits in it.
// A sum that does not fit in an int saturates at math.MaxInt.
func RequiredHorizon(processes []Process) int {
	clock, ok := requiredHorizon(processes)
	if !ok {
		return math.MaxInt
	}
	return clock
}

func requiredHorizon(processes []Process) (int, bool) {
	clock := 0
	for _, p := range processes {
		clock = max(clock, p.ArrivalTime)
		if p.ServiceTime > math.MaxInt-clock {
			return 0, false
		}
		clock += p.ServiceTime
	}
	return clock, true
}

// Validate checks what the engine takes for granted about its input.
func Validate(processes []Process, lastInstant int) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		switch {
		case p.Name == "":
			return fmt.Errorf("%w: process %d has no name", ErrInvalidProcess, i)
		case p.ArrivalTime < 0:
			return fmt.Errorf("%w: %s arrives at %d", ErrInvalidProcess, p.Name, p.ArrivalTime)
		case p.ServiceTime <= 0:
			return fmt.Errorf("%w: %s needs %d ticks of service", ErrInvalidProcess, p.Name, p.ServiceTime)
		case i > 0 && p.ArrivalTime < processes[i-1].ArrivalTime:
			return fmt.Errorf("%w: %s arrives before %s", ErrInvalidProcess, p.Name, processes[i-1].Name)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: duplicate name %s", ErrInvalidProcess, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	need, ok := requiredHorizon(processes)
	if !ok {
		return ErrHorizonOverflow
	}
	if lastInstant < need {
		return fmt.Errorf("%w: %d < %d", ErrHorizonTooSmall, lastInstant, need)
	}
	return nil
}
