package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case gridState:
		b.WriteString(m.gridView())
	case breakdownState:
		b.WriteString(m.breakdown.View())
	case tripsState:
		b.WriteString(m.tripList.View())
	case formState:
		if m.form != nil {
			b.WriteString(m.form.View())
		}
	case configView:
		b.WriteString(m.configView.View())
	case loading:
		b.WriteString(fmt.Sprintf("%s Loading trips...", m.loadingSpinner.View()))
	case errorState:
		b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("%s - 'q' to quit", m.errorMsg)))
		return m.styles.docStyle.Render(b.String())
	}

	if status := m.renderStatus(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	t := m.selectedTrip()
	if m.sessionState == loading || t.Name == "" {
		return m.styles.titleStyle.Render(fmt.Sprintf("triptui | %s", m.sessionState.String()))
	}

	p, ok := tripPeriod(t)
	if !ok {
		return m.styles.titleStyle.Render(fmt.Sprintf("triptui | %s | %s", m.sessionState.String(), t.Name))
	}

	return m.styles.titleStyle.Render(
		fmt.Sprintf("triptui | %s | %s | %s (%d days)",
			m.sessionState.String(),
			t.Name,
			p.String(),
			p.days(),
		),
	)
}

func (m model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return m.styles.errorStyle.Render(m.status)
	}
	return m.styles.statusStyle.Render(m.status)
}
