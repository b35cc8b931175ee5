package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category management commands",
		Long:  `Commands for managing the expense categories of a trip. Every date of the trip carries the same categories.`,
	}

	addCmd := &cobra.Command{
		Use:   "add CATEGORY",
		Short: "Add a category to every date of a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.tripName(cmd)
			if err := a.tracker.AddCategory(cmd.Context(), name, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Added category %s to %s\n", args[0], name)
			return err
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a category",
		Long:  `Rename a category on every date of a trip. An existing category named NEW is overwritten.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.tripName(cmd)
			if err := a.tracker.RenameCategory(cmd.Context(), name, args[0], args[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s in %s\n", args[0], args[1], name)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete CATEGORY",
		Short: "Delete a category from every date of a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.tripName(cmd)
			if err := a.tracker.DeleteCategory(cmd.Context(), name, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s from %s\n", args[0], name)
			return err
		},
	}

	for _, c := range []*cobra.Command{addCmd, renameCmd, deleteCmd} {
		addTripFlag(c)
	}

	cmd.AddCommand(addCmd, renameCmd, deleteCmd)
	return cmd
}
