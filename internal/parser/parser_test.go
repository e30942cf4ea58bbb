package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

func TestParse_File(t *testing.T) {
	f, err := os.Open("../../testdata/stallings_trace.txt")
	require.NoError(t, err)
	defer f.Close()

	in, err := Parse(f)
	require.NoError(t, err)

	assert.Equal(t, Trace, in.Operation)
	assert.Equal(t, 20, in.LastInstant)
	assert.Equal(t, []schedulers.Request{
		{ID: '1'}, {ID: '2', Quantum: 1}, {ID: '3'}, {ID: '4'}, {ID: '5'}, {ID: '6'}, {ID: '7'},
	}, in.Algorithms)
	require.Len(t, in.Processes, 5)
	assert.Equal(t, core.Process{Name: "B", ArrivalTime: 2, ServiceTime: 6, Priority: 6}, in.Processes[1])
}

func TestParse_ToleratesWhitespace(t *testing.T) {
	in, err := Parse(strings.NewReader("stats\n 2-3 , 8-2 \n\n6\n2\nA, 0, 3\r\nB,1,2\n"))
	require.NoError(t, err)

	assert.Equal(t, Stats, in.Operation)
	assert.Equal(t, []schedulers.Request{{ID: '2', Quantum: 3}, {ID: '8', Quantum: 2}}, in.Algorithms)
	assert.Equal(t, "A", in.Processes[0].Name)
	assert.Equal(t, 3, in.Processes[0].ServiceTime)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too short", input: "trace\n1\n"},
		{name: "unknown operation", input: "print\n1\n5\n1\nA,0,3\n"},
		{name: "long algorithm id", input: "trace\n12\n5\n1\nA,0,3\n"},
		{name: "bad quantum", input: "trace\n2-x\n5\n1\nA,0,3\n"},
		{name: "bad last instant", input: "trace\n1\nten\n1\nA,0,3\n"},
		{name: "count mismatch", input: "trace\n1\n5\n2\nA,0,3\n"},
		{name: "missing column", input: "trace\n1\n5\n1\nA,0\n"},
		{name: "bad arrival", input: "trace\n1\n5\n1\nA,x,3\n"},
		{name: "bad service", input: "trace\n1\n5\n1\nA,0,x\n"},
		{name: "zero service", input: "trace\n1\n5\n1\nA,0,0\n"},
		{name: "unsorted", input: "trace\n1\n9\n2\nA,3,1\nB,1,1\n"},
		{name: "horizon too small", input: "trace\n1\n2\n1\nA,0,3\n"},
		{name: "horizon overflow", input: "trace\n1\n5\n2\nA,0,9223372036854775807\nB,0,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestParse_HorizonErrorKeepsCause(t *testing.T) {
	_, err := Parse(strings.NewReader("trace\n1\n2\n1\nA,0,3\n"))
	assert.ErrorIs(t, err, core.ErrHorizonTooSmall)
}

func TestParse_OverflowKeepsCause(t *testing.T) {
	_, err := Parse(strings.NewReader("trace\n1\n5\n2\nA,0,9223372036854775807\nB,0,1\n"))
	assert.ErrorIs(t, err, core.ErrHorizonOverflow)
}
