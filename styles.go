package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const standardMargin = 2

type styles struct {
	docStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	errorStyle  lipgloss.Style
	statusStyle lipgloss.Style
	mutedStyle  lipgloss.Style

	// grid
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
	itemStyle   lipgloss.Style
	totalStyle  lipgloss.Style
	cursorStyle lipgloss.Style
	borderStyle lipgloss.Style
}

func createStyles(theme Theme) styles {
	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		errorStyle:  lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		statusStyle: lipgloss.NewStyle().Foreground(theme.Success),
		mutedStyle:  lipgloss.NewStyle().Foreground(theme.Muted),

		headerStyle: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1).Align(lipgloss.Center),
		cellStyle:   cell.Foreground(theme.Text),
		itemStyle:   cell.Align(lipgloss.Left).Foreground(theme.Text).Bold(true),
		totalStyle:  cell.Foreground(theme.Primary).Bold(true),
		cursorStyle: cell.Foreground(lipgloss.Color("#000000")).Background(theme.Cursor).Bold(true),
		borderStyle: lipgloss.NewStyle().Foreground(theme.Border),
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " + "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.SecondaryText),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Text),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Text),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
	return helpModel
}
