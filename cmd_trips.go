package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/totals"
	"github.com/Rshep3087/triptui/trip"
)

// tripSummary is one line of `trips list`.
type tripSummary struct {
	Name       string          `json:"tripName"`
	Dates      int             `json:"dates"`
	Categories int             `json:"categories"`
	Total      decimal.Decimal `json:"total"`
}

func summarizeTrips(trips []trip.Trip) []tripSummary {
	out := make([]tripSummary, 0, len(trips))
	for _, t := range trips {
		out = append(out, tripSummary{
			Name:       t.Name,
			Dates:      len(t.Expenses),
			Categories: len(t.CategoryNames()),
			Total:      totals.Project(t).GrandTotal,
		})
	}
	return out
}

func newTripsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Trip management commands",
		Long:  `Commands for listing, adding and removing trips.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all trips",
		Long:  `List all trips with their number of dates, categories and their total.`,
		Args:  cobra.NoArgs,
		RunE:  a.tripsListRun,
	}
	addOutputFlag(listCmd)

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a trip",
		Long:  `Add a trip starting today with a single fare of 1000.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tracker.AddTrip(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Added trip %s\n", args[0])
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tracker.DeleteTrip(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted trip %s\n", args[0])
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [NAME]",
		Short: "Show a trip's expenses",
		Long:  `Show the expense grid of a trip, the first trip when NAME is omitted.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.tripsShowRun,
	}
	addOutputFlag(showCmd)
	addPlainFlag(showCmd)

	cmd.AddCommand(listCmd, addCmd, deleteCmd, showCmd)
	return cmd
}

func (a *app) tripsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	summaries := summarizeTrips(a.tracker.Store().Trips)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), summaries)
	case tableOutputFormat:
		t := createStyledTable("TRIP", "DATES", "CATEGORIES", "TOTAL")
		for _, s := range summaries {
			t.Row(
				s.Name,
				strconv.Itoa(s.Dates),
				strconv.Itoa(s.Categories),
				currency.Format(s.Total, a.cfg.Currency),
			)
		}
		return printTable(cmd.OutOrStdout(), t)
	default:
		return errors.New("unsupported output format")
	}
}

func (a *app) tripsShowRun(cmd *cobra.Command, args []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	t, err := a.findTrip(name)
	if err != nil {
		return err
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), t)
	case tableOutputFormat:
		headers, rows := gridRows(t, totals.Project(t), a.amountFormat(cmd))
		// number the date columns so they can be passed as --date-index
		for i, d := range t.Dates() {
			headers[i+1] = fmt.Sprintf("%d. %s", i+1, d)
		}

		tbl := createStyledTable(headers...)
		for _, r := range rows {
			tbl.Row(r...)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), t.Name); err != nil {
			return err
		}
		return printTable(cmd.OutOrStdout(), tbl)
	default:
		return errors.New("unsupported output format")
	}
}

// addTripFlag adds the --trip flag shared by the editing commands.
func addTripFlag(cmd *cobra.Command) {
	cmd.Flags().String("trip", "", "trip to change (default is the first trip)")
}

// tripName returns the --trip flag, or the selected trip when it is unset.
func (a *app) tripName(cmd *cobra.Command) string {
	if name, _ := cmd.Flags().GetString("trip"); name != "" {
		return name
	}
	return a.tracker.Store().Selected
}

// findTrip returns the named trip, or the selected one for an empty name.
func (a *app) findTrip(name string) (trip.Trip, error) {
	store := a.tracker.Store()
	if name == "" {
		name = store.Selected
	}

	t, ok := store.Trip(name)
	if !ok {
		return trip.Trip{}, &trip.NotFoundError{Kind: "trip", Key: name}
	}
	return t, nil
}

// parseIndex turns a date position counting from 1 into a record index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid date index %q: must be a number from 1", s)
	}
	return n - 1, nil
}
