// Package triplist is the table used to pick a trip.
package triplist

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/totals"
	"github.com/Rshep3087/triptui/trip"
)

// Colors are the theme colors the list is drawn with.
type Colors struct {
	Primary string
}

// Model lists the trips with their totals and tracks the highlighted one.
type Model struct {
	trips    table.Model
	names    []string
	currency string
}

// New returns an empty list. Amounts are shown in currencyCode.
func New(colors Colors, currencyCode string) Model {
	trips := table.New(
		table.WithColumns([]table.Column{
			{Title: "Trip", Width: 30},
			{Title: "Dates", Width: 8},
			{Title: "Categories", Width: 12},
			{Title: "Total", Width: 16},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	trips.SetStyles(tableStyle)

	return Model{trips: trips, currency: currencyCode}
}

// SetFocus focuses or blurs the underlying table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.trips.Focus()
	} else {
		m.trips.Blur()
	}
}

// SetSize fits the list into width by height cells.
func (m *Model) SetSize(width, height int) {
	m.trips.SetHeight(height)
	m.trips.SetWidth(width)
}

// SetStore lists every trip and puts the cursor on the selected one.
func (m *Model) SetStore(s trip.Store) {
	rows := make([]table.Row, 0, len(s.Trips))
	m.names = make([]string, 0, len(s.Trips))
	cursor := 0
	for i, t := range s.Trips {
		rows = append(rows, table.Row{
			t.Name,
			strconv.Itoa(len(t.Expenses)),
			strconv.Itoa(len(t.CategoryNames())),
			currency.Format(totals.Project(t).GrandTotal, m.currency),
		})
		m.names = append(m.names, t.Name)
		if t.Name == s.Selected {
			cursor = i
		}
	}

	m.trips.SetRows(rows)
	m.trips.SetCursor(cursor)
}

// SelectedName returns the trip under the cursor.
func (m Model) SelectedName() (string, bool) {
	i := m.trips.Cursor()
	if i < 0 || i >= len(m.names) {
		return "", false
	}
	return m.names[i], true
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.trips, cmd = m.trips.Update(msg)
	return *m, cmd
}

func (m *Model) View() string {
	return m.trips.View()
}
