package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	up    key.Binding
	down  key.Binding
	left  key.Binding
	right key.Binding

	addAmount      key.Binding
	setAmount      key.Binding
	addCategory    key.Binding
	renameCategory key.Binding
	deleteCategory key.Binding
	addDate        key.Binding
	editDate       key.Binding
	deleteDate     key.Binding
	addTrip        key.Binding
	deleteTrip     key.Binding

	nextTrip     key.Binding
	previousTrip key.Binding
	trips        key.Binding
	breakdown    key.Binding
	config       key.Binding
	selectTrip   key.Binding
	escape       key.Binding
	fullHelp     key.Binding
	quit         key.Binding
	forceQuit    key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.addAmount,
		km.nextTrip,
		km.trips,
		km.breakdown,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.up,
			km.down,
			km.left,
			km.right,
		},
		{
			km.addAmount,
			km.setAmount,
			km.addCategory,
			km.renameCategory,
			km.deleteCategory,
		},
		{
			km.addDate,
			km.editDate,
			km.deleteDate,
			km.addTrip,
			km.deleteTrip,
		},
		{
			km.nextTrip,
			km.previousTrip,
			km.trips,
			km.breakdown,
			km.config,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous category"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next category"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous date"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next date"),
		),
		addAmount: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "add amount"),
		),
		setAmount: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "set amount"),
		),
		addCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add category"),
		),
		renameCategory: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename category"),
		),
		deleteCategory: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete category"),
		),
		addDate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "add date"),
		),
		editDate: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit date"),
		),
		deleteDate: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete date"),
		),
		addTrip: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new trip"),
		),
		deleteTrip: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete trip"),
		),
		nextTrip: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next trip"),
		),
		previousTrip: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous trip"),
		),
		trips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trips"),
		),
		breakdown: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "breakdown"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		selectTrip: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select trip"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
	return keys
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is blocked by active forms
	if isInputBlocked(m) {
		return m, nil
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	// Handle navigation keys
	if model, cmd := handleNavigationKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Handle session state changes
	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	if m.sessionState == gridState {
		if model, cmd := handleGridKeys(msg, m); cmd != nil {
			return model, cmd
		}
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.forceQuit) {
		return m, tea.Quit
	}

	// nothing but quitting is possible without trips
	if m.sessionState == errorState {
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	return m, nil
}

func isInputBlocked(m *model) bool {
	if m.form != nil && m.form.State == huh.StateNormal {
		return true
	}

	if m.sessionState == loading || m.sessionState == errorState {
		return true
	}

	return false
}

func handleNavigationKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.nextTrip):
		return advanceTrip(m, 1)
	case key.Matches(msg, m.keys.previousTrip):
		return advanceTrip(m, -1)
	}

	if m.sessionState == tripsState && key.Matches(msg, m.keys.selectTrip) {
		return selectListedTrip(m)
	}

	return m, nil
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.trips):
		if m.sessionState != tripsState {
			m.previousSessionState = m.sessionState
			m.tripList.SetStore(m.tracker.Store())
			m.tripList.SetFocus(true)
			m.sessionState = tripsState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.breakdown):
		if m.sessionState != breakdownState {
			m.previousSessionState = m.sessionState
			m.refreshViews()
			m.sessionState = breakdownState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configView
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, tea.WindowSize()
	}

	return m, nil
}

// handleGridKeys moves the cell cursor and opens the edit forms.
func handleGridKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.addAmount):
		return m.openForm(addAmountForm)
	case key.Matches(msg, m.keys.setAmount):
		return m.openForm(setAmountForm)
	case key.Matches(msg, m.keys.addCategory):
		return m.openForm(addCategoryForm)
	case key.Matches(msg, m.keys.renameCategory):
		return m.openForm(renameCategoryForm)
	case key.Matches(msg, m.keys.deleteCategory):
		return m.openForm(deleteCategoryForm)
	case key.Matches(msg, m.keys.addDate):
		return m.openForm(addDateForm)
	case key.Matches(msg, m.keys.editDate):
		return m.openForm(editDateForm)
	case key.Matches(msg, m.keys.deleteDate):
		return m.openForm(deleteDateForm)
	case key.Matches(msg, m.keys.addTrip):
		return m.openForm(addTripForm)
	case key.Matches(msg, m.keys.deleteTrip):
		return m.openForm(deleteTripForm)
	default:
		return m, nil
	}

	// cursor moved; returning a non-nil cmd marks the key as handled
	return m, func() tea.Msg { return nil }
}

// handleEscape closes the open form or view and returns to the grid.
func handleEscape(m *model) (tea.Model, tea.Cmd) {
	if m.sessionState == formState && m.form != nil {
		log.Debug("handling escape in form state", "form", m.formKind.String())
		m.form.State = huh.StateAborted
		m.form = nil
		m.setStatus("Cancelled", false)
	}

	if m.sessionState == tripsState {
		m.tripList.SetFocus(false)
	}

	if m.sessionState == configView {
		m.configView.SetFocus(false)
	}

	m.previousSessionState = m.sessionState
	m.sessionState = gridState
	return m, func() tea.Msg { return nil }
}
