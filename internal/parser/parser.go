package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

var ErrMalformedInput = errors.New("malformed input")

type Operation string

const (
	Trace Operation = "trace"
	Stats Operation = "stats"
)

type Input struct {
	Operation   Operation
	Algorithms  []schedulers.Request
	LastInstant int
	Processes   []core.Process
}

// Parse reads the scheduler input format:
//
//	trace|stats
//	1,2-4,8-1
//	<last instant>
//	<process count>
//	<name>,<arrival>,<service>
//
// The third process column doubles as the base priority for aging.
func Parse(r io.Reader) (*Input, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 lines, got %d", ErrMalformedInput, len(lines))
	}

	in := &Input{Operation: Operation(lines[0].text)}
	if in.Operation != Trace && in.Operation != Stats {
		return nil, lines[0].errorf("unknown operation %q", lines[0].text)
	}
	if in.Algorithms, err = parseAlgorithms(lines[1]); err != nil {
		return nil, err
	}
	if in.LastInstant, err = lines[2].atoi("last instant"); err != nil {
		return nil, err
	}
	count, err := lines[3].atoi("process count")
	if err != nil {
		return nil, err
	}
	if len(lines)-4 != count {
		return nil, fmt.Errorf("%w: expected %d processes, got %d", ErrMalformedInput, count, len(lines)-4)
	}

	in.Processes = make([]core.Process, count)
	for i, l := range lines[4:] {
		if in.Processes[i], err = parseProcess(l); err != nil {
			return nil, err
		}
	}
	if err := core.Validate(in.Processes, in.LastInstant); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return in, nil
}

type line struct {
	number int
	text   string
}

func (l line) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, l.number, fmt.Sprintf(format, args...))
}

func (l line) atoi(what string) (int, error) {
	v, err := strconv.Atoi(l.text)
	if err != nil {
		return 0, l.errorf("%s %q is not a number", what, l.text)
	}
	return v, nil
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{number: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// parseAlgorithms reads "1,2-4,8-1": an id, optionally followed by -quantum.
func parseAlgorithms(l line) ([]schedulers.Request, error) {
	fields := strings.Split(l.text, ",")
	out := make([]schedulers.Request, 0, len(fields))
	for _, f := range fields {
		id, quantum, hasQuantum := strings.Cut(strings.TrimSpace(f), "-")
		if len(id) != 1 {
			return nil, l.errorf("algorithm %q is not a single id", f)
		}
		req := schedulers.Request{ID: id[0]}
		if hasQuantum {
			q, err := strconv.Atoi(quantum)
			if err != nil {
				return nil, l.errorf("quantum %q is not a number", quantum)
			}
			req.Quantum = q
		}
		out = append(out, req)
	}
	return out, nil
}

func parseProcess(l line) (core.Process, error) {
	fields := strings.Split(l.text, ",")
	if len(fields) != 3 {
		return core.Process{}, l.errorf("expected name,arrival,service")
	}
	arrival, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return core.Process{}, l.errorf("arrival %q is not a number", fields[1])
	}
	service, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return core.Process{}, l.errorf("service %q is not a number", fields[2])
	}
	return core.Process{
		Name:        strings.TrimSpace(fields[0]),
		ArrivalTime: arrival,
		ServiceTime: service,
		Priority:    service,
	}, nil
}
