package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		name     string
		state    sessionState
		expected string
	}{
		{
			name:     "grid state",
			state:    gridState,
			expected: "expenses",
		},
		{
			name:     "breakdown state",
			state:    breakdownState,
			expected: "breakdown",
		},
		{
			name:     "trips state",
			state:    tripsState,
			expected: "trips",
		},
		{
			name:     "form state",
			state:    formState,
			expected: "edit",
		},
		{
			name:     "loading state",
			state:    loading,
			expected: "loading",
		},
		{
			name:     "config view state",
			state:    configView,
			expected: "configuration",
		},
		{
			name:     "error state",
			state:    errorState,
			expected: "error",
		},
		{
			name:     "unknown state",
			state:    sessionState(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.state.String()
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestOutputFormatConstants(t *testing.T) {
	be.Equal(t, "json", jsonOutputFormat)
	be.Equal(t, "table", tableOutputFormat)
}

func TestSessionStateConstants(t *testing.T) {
	be.True(t, gridState != breakdownState)
	be.True(t, breakdownState != tripsState)
	be.True(t, tripsState != formState)
	be.True(t, formState != loading)
	be.True(t, loading != configView)
	be.True(t, configView != errorState)

	// gridState is the zero value so a fresh model starts on the grid
	be.Equal(t, sessionState(0), gridState)
}
