package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Date management commands",
		Long:  `Commands for managing the dates of a trip. Dates use the YYYY-MM-DD form and INDEX counts from 1.`,
	}

	addCmd := &cobra.Command{
		Use:   "add DATE",
		Short: "Add a date with every category at zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.tripName(cmd)
			if err := a.tracker.AddDate(cmd.Context(), name, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", args[0], name)
			return err
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit INDEX DATE",
		Short: "Change a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			name := a.tripName(cmd)
			if err := a.tracker.EditDate(cmd.Context(), name, index, args[1]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Changed date %d of %s to %s\n", index+1, name, args[1])
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete a date and its amounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			name := a.tripName(cmd)
			if err := a.tracker.DeleteDate(cmd.Context(), name, index); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted date %d from %s\n", index+1, name)
			return err
		},
	}

	for _, c := range []*cobra.Command{addCmd, editCmd, deleteCmd} {
		addTripFlag(c)
	}

	cmd.AddCommand(addCmd, editCmd, deleteCmd)
	return cmd
}
