package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/totals"
	"github.com/Rshep3087/triptui/trip"
)

// gridRows lays out a trip as display rows: one per category followed by the
// totals row. Every row starts with the item name and ends with its total.
func gridRows(t trip.Trip, tot totals.Totals, format amountFormat) (headers []string, rows [][]string) {
	headers = append(headers, "Items")
	for _, d := range tot.Dates {
		headers = append(headers, formatDate(d))
	}
	headers = append(headers, "Total")

	for _, c := range tot.Categories {
		row := []string{titleCaser.String(c)}
		for _, r := range t.Expenses {
			v, _ := r.Categories.Get(c)
			row = append(row, format(v))
		}
		row = append(row, format(tot.RowTotal[c]))
		rows = append(rows, row)
	}

	footer := []string{"Total"}
	for _, ct := range tot.ColumnTotal {
		footer = append(footer, format(ct))
	}
	footer = append(footer, format(tot.GrandTotal))
	rows = append(rows, footer)

	return headers, rows
}

// gridView renders the selected trip with the cursor cell highlighted.
func (m model) gridView() string {
	t := m.selectedTrip()
	tot := m.tracker.Totals()
	headers, rows := gridRows(t, tot, amountFormatter(m.config.Currency, false))
	footerRow := len(rows) - 1
	lastCol := len(headers) - 1

	grid := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.borderStyle).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return m.styles.headerStyle
			case row == m.cursorRow && col == m.cursorCol+1 && m.sessionState == gridState:
				return m.styles.cursorStyle
			case row == footerRow || col == lastCol:
				return m.styles.totalStyle
			case col == 0:
				return m.styles.itemStyle
			default:
				return m.styles.cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left,
		grid.Render(),
		m.cursorSummary(),
	)
}

// cursorSummary describes the cell under the cursor.
func (m model) cursorSummary() string {
	category, index, ok := m.cursorCell()
	if !ok {
		return ""
	}

	t := m.selectedTrip()
	v, _ := t.Expenses[index].Categories.Get(category)
	return m.styles.mutedStyle.Render(fmt.Sprintf("%s on %s: %s",
		titleCaser.String(category),
		formatDate(t.Expenses[index].Date),
		currency.Format(v, m.config.Currency),
	))
}
