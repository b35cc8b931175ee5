package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case tripsLoadedMsg:
		return m.handleTripsLoaded(msg)

	case dataFileChangedMsg:
		return m.handleDataFileChanged()

	case tripsReloadedMsg:
		return m.handleTripsReloaded(msg)
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case formState:
		return updateForm(msg, m)

	case breakdownState:
		m.breakdown, cmd = m.breakdown.Update(msg)
		return m, cmd

	case tripsState:
		m.tripList, cmd = m.tripList.Update(msg)
		return m, cmd

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateForm feeds msg to the open form and applies it once completed.
func updateForm(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.sessionState = gridState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	} else {
		log.Debug("form did not return a form, returning nil")
		return m, nil
	}

	switch m.form.State {
	case huh.StateCompleted:
		log.Debug("form completed", "form", m.formKind.String())
		m.submitForm()
		m.form = nil
		m.previousSessionState = m.sessionState
		m.sessionState = gridState
		return m, nil

	case huh.StateAborted:
		m.form = nil
		m.setStatus("Cancelled", false)
		m.previousSessionState = m.sessionState
		m.sessionState = gridState
		return m, nil
	}

	return m, cmd
}
