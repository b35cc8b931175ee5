package main

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/triptui/totals"
)

// totalsReport is the JSON form of a trip's totals.
type totalsReport struct {
	Trip       string          `json:"tripName"`
	Categories []categoryTotal `json:"categories"`
	Dates      []dateTotal     `json:"dates"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	NoData     bool            `json:"noData"`
}

type categoryTotal struct {
	Category string           `json:"category"`
	Total    decimal.Decimal  `json:"total"`
	Percent  *decimal.Decimal `json:"percent,omitempty"`
}

type dateTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

func newTotalsReport(name string, tot totals.Totals) totalsReport {
	report := totalsReport{
		Trip:       name,
		Categories: make([]categoryTotal, 0, len(tot.Categories)),
		Dates:      make([]dateTotal, 0, len(tot.Dates)),
		GrandTotal: tot.GrandTotal,
		NoData:     tot.NoData,
	}

	for _, c := range tot.Categories {
		ct := categoryTotal{Category: c, Total: tot.RowTotal[c]}
		if p, ok := tot.SharePercent(c); ok {
			ct.Percent = &p
		}
		report.Categories = append(report.Categories, ct)
	}

	for i, d := range tot.Dates {
		report.Dates = append(report.Dates, dateTotal{Date: d, Total: tot.ColumnTotal[i]})
	}

	return report
}

func newTotalsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show a trip's totals",
		Long:  `Show how much a trip cost per category, with each category's share of the grand total.`,
		Args:  cobra.NoArgs,
		RunE:  a.totalsRun,
	}
	cmd.Flags().String("trip", "", "trip to total (default is the first trip)")
	addOutputFlag(cmd)
	addPlainFlag(cmd)

	return cmd
}

func (a *app) totalsRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("trip")
	t, err := a.findTrip(name)
	if err != nil {
		return err
	}
	report := newTotalsReport(t.Name, totals.Project(t))

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), report)
	case tableOutputFormat:
		return a.outputTotalsTable(cmd, report)
	default:
		return errors.New("unsupported output format")
	}
}

func (a *app) outputTotalsTable(cmd *cobra.Command, report totalsReport) error {
	w := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(w, report.Trip); err != nil {
		return err
	}

	if report.NoData {
		_, err := fmt.Fprintln(w, "No spending recorded yet")
		return err
	}

	format := a.amountFormat(cmd)
	t := createStyledTable("CATEGORY", "TOTAL", "SHARE")
	for _, c := range report.Categories {
		share := "-"
		if c.Percent != nil {
			share = c.Percent.StringFixed(2) + "%"
		}
		t.Row(titleCaser.String(c.Category), format(c.Total), share)
	}
	t.Row("Total", format(report.GrandTotal), "100.00%")

	return printTable(w, t)
}
