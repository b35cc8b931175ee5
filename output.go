package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// Utility functions for output formatting.
func outputJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func addPlainFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("plain", false, "show table amounts without currency symbols or separators")
}

// amountFormat returns how table amounts are rendered for cmd.
func (a *app) amountFormat(cmd *cobra.Command) amountFormat {
	plain, _ := cmd.Flags().GetBool("plain")
	return amountFormatter(a.cfg.Currency, plain)
}

// validateOutputFormat returns the --output flag after checking it is supported.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")

	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	return outputFormat, nil
}

func printTable(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
