package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Rshep3087/triptui/storage"
	"github.com/Rshep3087/triptui/trip"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the trips to other files",
		Long: `Write the trips to every --to path at once. Paths ending in .db, .sqlite or
.sqlite3 are written as SQLite databases, anything else as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, _ := cmd.Flags().GetStringSlice("to")
			trips := a.tracker.Store().Trips

			if err := backup(cmd.Context(), trips, paths); err != nil {
				return err
			}

			for _, p := range paths {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d trips to %s\n", len(trips), p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("to", nil, "destination path, repeatable")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// backup saves trips to every path concurrently.
func backup(ctx context.Context, trips []trip.Trip, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		g.Go(func() error {
			backend := storage.BackendForPath(path)
			p, err := storage.Open(backend, path)
			if err != nil {
				return fmt.Errorf("backup %s: %w", path, err)
			}
			defer p.Close()

			if err := p.Save(ctx, trips); err != nil {
				return fmt.Errorf("backup %s: %w", path, err)
			}

			log.Debug("backup written", "path", path, "backend", backend)
			return nil
		})
	}

	return g.Wait()
}
