package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Message types for store loads and file changes.
type (
	tripsLoadedMsg struct {
		trips int
		err   error
	}

	// dataFileChangedMsg is sent when another process rewrites the data file.
	dataFileChangedMsg struct{}

	tripsReloadedMsg struct {
		err error
	}
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()
	m.width = msg.Width
	m.height = msg.Height

	takenHeight := 5
	if m.help.ShowAll {
		takenHeight += 5
	}

	m.breakdown.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.tripList.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.configView.SetSize(msg.Width-h, msg.Height-v-takenHeight)

	m.help.Width = msg.Width

	if m.form != nil {
		m.form = m.form.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width - h)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleTripsLoaded(msg tripsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.sessionState = errorState
		m.errorMsg = fmt.Sprintf("Could not load trips: %s", msg.err)
		return m, nil
	}

	log.Debug("trips loaded", "count", msg.trips)

	m.resetCursor()
	m.refreshViews()

	if m.sessionState == loading {
		m.sessionState = gridState
	}

	return m, tea.WindowSize()
}

func (m model) handleDataFileChanged() (tea.Model, tea.Cmd) {
	return m, tea.Batch(m.reloadTrips, waitForChange(m.changes))
}

func (m model) handleTripsReloaded(msg tripsReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("failed to reload trips", "error", msg.err)
		m.setStatus(fmt.Sprintf("Reload failed: %s", msg.err), true)
		return m, nil
	}

	m.refreshViews()
	return m, nil
}

// Store access functions.
func (m model) loadTrips() tea.Msg {
	if m.tracker == nil {
		return tripsLoadedMsg{err: errors.New("no trips store")}
	}

	trips := m.tracker.Store().Trips
	if len(trips) == 0 {
		return tripsLoadedMsg{err: errors.New("the store holds no trips")}
	}
	return tripsLoadedMsg{trips: len(trips)}
}

func (m model) reloadTrips() tea.Msg {
	return tripsReloadedMsg{err: m.tracker.Reload(m.ctx())}
}

// waitForChange blocks until the watcher reports a change.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return dataFileChangedMsg{}
	}
}
