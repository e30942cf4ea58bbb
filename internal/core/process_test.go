package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredHorizon(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		want      int
	}{
		{name: "empty", want: 0},
		{name: "back to back", processes: twoProcesses(), want: 5},
		{
			name: "idle gap",
			processes: []Process{
				{Name: "A", ArrivalTime: 0, ServiceTime: 2},
				{Name: "B", ArrivalTime: 5, ServiceTime: 1},
			},
			want: 6,
		},
		{
			name: "late start",
			processes: []Process{
				{Name: "A", ArrivalTime: 3, ServiceTime: 2},
			},
			want: 5,
		},
		{
			name: "saturates",
			processes: []Process{
				{Name: "A", ArrivalTime: 0, ServiceTime: math.MaxInt},
				{Name: "B", ArrivalTime: 0, ServiceTime: 1},
			},
			want: math.MaxInt,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredHorizon(tt.processes))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		processes   []Process
		lastInstant int
		wantErr     error
	}{
		{name: "valid", processes: twoProcesses(), lastInstant: 5},
		{name: "larger horizon", processes: twoProcesses(), lastInstant: 50},
		{
			name:        "missing name",
			processes:   []Process{{ArrivalTime: 0, ServiceTime: 1}},
			lastInstant: 1,
			wantErr:     ErrInvalidProcess,
		},
		{
			name:        "negative arrival",
			processes:   []Process{{Name: "A", ArrivalTime: -1, ServiceTime: 1}},
			lastInstant: 1,
			wantErr:     ErrInvalidProcess,
		},
		{
			name:        "zero service",
			processes:   []Process{{Name: "A", ArrivalTime: 0, ServiceTime: 0}},
			lastInstant: 1,
			wantErr:     ErrInvalidProcess,
		},
		{
			name: "unsorted arrivals",
			processes: []Process{
				{Name: "A", ArrivalTime: 2, ServiceTime: 1},
				{Name: "B", ArrivalTime: 1, ServiceTime: 1},
			},
			lastInstant: 10,
			wantErr:     ErrInvalidProcess,
		},
		{
			name: "duplicate names",
			processes: []Process{
				{Name: "A", ArrivalTime: 0, ServiceTime: 1},
				{Name: "A", ArrivalTime: 1, ServiceTime: 1},
			},
			lastInstant: 10,
			wantErr:     ErrInvalidProcess,
		},
		{name: "horizon too small", processes: twoProcesses(), lastInstant: 4, wantErr: ErrHorizonTooSmall},
		{
			name: "service overflows horizon",
			processes: []Process{
				{Name: "A", ArrivalTime: 0, ServiceTime: math.MaxInt},
				{Name: "B", ArrivalTime: 0, ServiceTime: 1},
			},
			lastInstant: math.MinInt,
			wantErr:     ErrHorizonOverflow,
		},
		{
			name: "late arrival overflows horizon",
			processes: []Process{
				{Name: "A", ArrivalTime: math.MaxInt, ServiceTime: 1},
			},
			lastInstant: math.MaxInt,
			wantErr:     ErrHorizonOverflow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.processes, tt.lastInstant)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
