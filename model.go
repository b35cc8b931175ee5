package main

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Rshep3087/triptui/breakdown"
	"github.com/Rshep3087/triptui/config"
	"github.com/Rshep3087/triptui/tracker"
	"github.com/Rshep3087/triptui/trip"
	"github.com/Rshep3087/triptui/triplist"
)

type model struct {
	// loadingSpinner is a spinner model for the initial loading state
	loadingSpinner spinner.Model

	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	// sessionState is the current state of the session
	sessionState         sessionState
	previousSessionState sessionState

	tracker *tracker.Tracker
	config  config.Config

	// cursorRow indexes the selected trip's categories, cursorCol its dates
	cursorRow int
	cursorCol int

	breakdown  breakdown.Model
	tripList   triplist.Model
	configView config.Model

	form       *huh.Form
	formKind   formKind
	formTarget formTarget

	status      string
	statusIsErr bool
	errorMsg    string

	// changes delivers a value whenever the data file is changed by another process
	changes <-chan struct{}

	width  int
	height int

	// runCtx is the program context; store calls made from commands use it
	runCtx context.Context
}

func newModel(ctx context.Context, t *tracker.Tracker, cfg config.Config, changes <-chan struct{}) model {
	theme := newTheme(cfg.Colors)

	configView := config.New()
	configView.SetConfig(cfg)

	m := model{
		loadingSpinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:           initializeKeyMap(),
		help:           createHelpModel(theme),
		theme:          theme,
		styles:         createStyles(theme),
		sessionState:   loading,
		tracker:        t,
		config:         cfg,
		breakdown:      breakdown.New(breakdown.WithCurrency(cfg.Currency)),
		tripList:       triplist.New(triplist.Colors{Primary: string(theme.Primary)}, cfg.Currency),
		configView:     configView,
		changes:        changes,
		runCtx:         ctx,
	}

	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadTrips, m.loadingSpinner.Tick}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

func (m model) ctx() context.Context {
	if m.runCtx == nil {
		return context.Background()
	}
	return m.runCtx
}

// selectedTrip returns the trip the grid shows.
func (m model) selectedTrip() trip.Trip {
	if m.tracker == nil {
		return trip.Trip{}
	}
	t, _ := m.tracker.Selected()
	return t
}

// cursorCell returns the category and record index under the cursor.
func (m model) cursorCell() (string, int, bool) {
	t := m.selectedTrip()
	names := t.CategoryNames()
	if m.cursorRow < 0 || m.cursorRow >= len(names) || m.cursorCol < 0 || m.cursorCol >= len(t.Expenses) {
		return "", 0, false
	}
	return names[m.cursorRow], m.cursorCol, true
}

func (m *model) moveCursor(dRow, dCol int) {
	m.cursorRow += dRow
	m.cursorCol += dCol
	m.clampCursor()
}

func (m *model) resetCursor() {
	m.cursorRow, m.cursorCol = 0, 0
}

// clampCursor keeps the cursor inside the grid after rows or columns go away.
func (m *model) clampCursor() {
	t := m.selectedTrip()
	m.cursorRow = clamp(m.cursorRow, 0, len(t.CategoryNames())-1)
	m.cursorCol = clamp(m.cursorCol, 0, len(t.Expenses)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

// refreshViews pushes the current store into the secondary views.
func (m *model) refreshViews() {
	t := m.selectedTrip()
	m.breakdown.SetTotals(t.Name, m.tracker.Totals())
	m.tripList.SetStore(m.tracker.Store())
	m.clampCursor()
}

func (m *model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusIsErr = isErr
}
