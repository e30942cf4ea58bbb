package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestLookup(t *testing.T) {
	for id, name := range map[byte]string{
		'1': "FCFS", '2': "RR", '3': "SPN", '4': "SRT",
		'5': "HRRN", '6': "FB-1", '7': "FB-2i", '8': "Aging",
	} {
		algorithm, err := Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, name, algorithm.Name)
	}

	_, err := Lookup('9')
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestAlgorithm_Title(t *testing.T) {
	rr, _ := Lookup('2')
	aging, _ := Lookup('8')
	fcfs, _ := Lookup('1')

	assert.Equal(t, "RR-4", rr.Title(4))
	assert.Equal(t, "Aging", aging.Title(4))
	assert.Equal(t, "FCFS", fcfs.Title(0))
}

func TestAlgorithm_RunRejectsQuantum(t *testing.T) {
	sim := core.NewSimulation(stallings(), 20)
	for _, id := range []byte{'2', '8'} {
		algorithm, _ := Lookup(id)
		assert.ErrorIs(t, algorithm.Run(sim, 0), ErrInvalidQuantum)
	}

	fcfs, _ := Lookup('1')
	assert.NoError(t, fcfs.Run(sim, 0))
}

func TestAlgorithm_RunResetsPreviousRun(t *testing.T) {
	sim := core.NewSimulation(stallings(), 20)
	aging, _ := Lookup('8')
	require.NoError(t, aging.Run(sim, 1))

	spn, _ := Lookup('3')
	require.NoError(t, spn.Run(sim, 0))
	assertCompletedSchedule(t, sim)
}

func TestAlgorithms_IsACopy(t *testing.T) {
	list := Algorithms()
	require.Len(t, list, 8)
	list[0].Name = "changed"

	fcfs, _ := Lookup('1')
	assert.Equal(t, "FCFS", fcfs.Name)
}
