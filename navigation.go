package main

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// advanceTrip selects the trip delta places away from the selected one, wrapping around.
func advanceTrip(m *model, delta int) (tea.Model, tea.Cmd) {
	store := m.tracker.Store()
	names := store.TripNames()
	if len(names) == 0 {
		return m, nil
	}

	i := slices.Index(names, store.Selected)
	next := names[((i+delta)%len(names)+len(names))%len(names)]

	log.Debug("switching trip", "from", store.Selected, "to", next)
	m.tracker.SelectTrip(next)
	m.resetCursor()
	m.refreshViews()

	return m, func() tea.Msg { return nil }
}

// selectListedTrip selects the trip under the trip list cursor and returns to the grid.
func selectListedTrip(m *model) (tea.Model, tea.Cmd) {
	name, ok := m.tripList.SelectedName()
	if !ok {
		return m, nil
	}

	m.tracker.SelectTrip(name)
	m.resetCursor()
	m.refreshViews()

	m.tripList.SetFocus(false)
	m.previousSessionState = m.sessionState
	m.sessionState = gridState
	return m, func() tea.Msg { return nil }
}
