// Package breakdown renders each category's share of a trip's spending.
package breakdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/totals"
)

// NoDataMessage is shown when a trip has nothing recorded.
const NoDataMessage = "No spending recorded yet"

const barWidth = 30

var titleCaser = cases.Title(language.English)

// Palette colors the slices in category order, wrapping around.
var Palette = []lipgloss.Color{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}

// Model defines the state for the breakdown view.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	tripName string
	totals   totals.Totals
	currency string
}

// Styles holds the styles for the breakdown chart.
type Styles struct {
	HeaderStyle  lipgloss.Style
	SummaryStyle lipgloss.Style
	MutedStyle   lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		HeaderStyle:  lipgloss.NewStyle().Bold(true),
		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		MutedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7d78")),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithCurrency sets the currency code totals are displayed in.
func WithCurrency(code string) Option {
	return func(m *Model) {
		m.currency = code
	}
}

// New creates a breakdown model with the default styles.
func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: "INR",
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetTotals replaces the projection shown for tripName.
func (m *Model) SetTotals(tripName string, t totals.Totals) {
	m.tripName = tripName
	m.totals = t
	m.UpdateViewport()
}

// Update scrolls the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View renders the viewport holding the table and chart.
func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

// Rows returns category, total and percent rows in display order. It is empty
// when there is no data.
func (m Model) Rows() []table.Row {
	rows := make([]table.Row, 0, len(m.totals.Shares))
	for _, s := range m.totals.Shares {
		rows = append(rows, table.Row{
			titleCaser.String(s.Category),
			currency.Format(s.Amount, m.currency),
			s.Percent.StringFixed(2) + "%",
		})
	}
	return rows
}

func (m *Model) UpdateViewport() {
	header := "Spending Breakdown"
	if m.tripName != "" {
		header = fmt.Sprintf("Spending Breakdown - %s", m.tripName)
	}

	if m.totals.NoData {
		m.Viewport.SetContent(
			lipgloss.JoinVertical(lipgloss.Top,
				m.Styles.HeaderStyle.Render(header),
				m.Styles.SummaryStyle.Render(m.Styles.MutedStyle.Render(NoDataMessage)),
			),
		)
		return
	}

	shares := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 20},
			{Title: "Total Spent", Width: 15},
			{Title: "% of Total", Width: 10},
		}),
		table.WithRows(m.Rows()),
		table.WithHeight(len(m.totals.Shares)+3),
	)

	grand := fmt.Sprintf("Total: %s", currency.Format(m.totals.GrandTotal, m.currency))

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.HeaderStyle.Render(header),
			lipgloss.JoinHorizontal(lipgloss.Top,
				m.Styles.SummaryStyle.Render(lipgloss.JoinVertical(lipgloss.Top, shares.View(), grand)),
				m.Styles.SummaryStyle.Render(m.chartView()),
			),
		),
	)
}

// chartView draws one proportional bar per category.
func (m Model) chartView() string {
	var b strings.Builder
	for i, s := range m.totals.Shares {
		color := Palette[i%len(Palette)]
		width := barLength(s.Percent)

		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", width)))
		b.WriteString(strings.Repeat(" ", barWidth-width+1))
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(titleCaser.String(s.Category)))
		if i < len(m.totals.Shares)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func barLength(percent decimal.Decimal) int {
	n := int(percent.Mul(decimal.NewFromInt(barWidth)).Div(decimal.NewFromInt(100)).Round(0).IntPart())
	if n == 0 && percent.IsPositive() {
		return 1
	}
	return min(n, barWidth)
}
