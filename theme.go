package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/triptui/config"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
	Cursor        lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#ffd644"),
		Error:         parseColor(colors.Error, "#ff0000"),
		Success:       parseColor(colors.Success, "#22ba46"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Border:        parseColor(colors.Border, "#7D56F4"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
		Cursor:        parseColor(colors.Cursor, "#36A2EB"),
	}
}

// parseColor parses a color string (hex or ANSI) and returns a lipgloss.Color
// Falls back to defaultColor if the input is empty.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	// lipgloss.Color accepts both hex colors ("#ff0000") and ANSI codes ("21")
	return lipgloss.Color(colorStr)
}
