package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/triptui/storage"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Replace the trips with a JSON snapshot",
		Long:  `Replace every trip with the trips of a JSON snapshot file, such as one written by backup.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			trips, err := storage.Unmarshal(data)
			if err != nil {
				return err
			}

			if err := a.tracker.Replace(cmd.Context(), trips); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d trips from %s\n", len(trips), args[0])
			return err
		},
	}
}
