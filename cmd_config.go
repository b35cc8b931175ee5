package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/triptui/config"
	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/storage"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
		Long:  `Commands for inspecting and creating the triptui.toml configuration file.`,
	}

	showCmd := &cobra.Command{
		Use:         "show",
		Short:       "Show the effective configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipTracker: "true"},
		RunE:        a.configShowRun,
	}
	addOutputFlag(showCmd)

	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipTracker: "true"},
		RunE:        configInitRun,
	}
	initCmd.Flags().String("path", config.DefaultPath(), "where to write the config file")
	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	checkCmd := &cobra.Command{
		Use:   "check [PATH]",
		Short: "Check a configuration file",
		Long: `Parse a configuration file and report keys and values triptui cannot use.
PATH defaults to --config, then to the default config location.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipTracker: "true"},
		RunE:        a.configCheckRun,
	}

	cmd.AddCommand(showCmd, initCmd, checkCmd)
	return cmd
}

func (a *app) configShowRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), a.cfg)
	case tableOutputFormat:
		t := createStyledTable("SETTING", "VALUE", "DESCRIPTION")
		for _, r := range config.Rows(a.cfg) {
			t.Row(r...)
		}
		return printTable(cmd.OutOrStdout(), t)
	default:
		return errors.New("unsupported output format")
	}
}

func configInitRun(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	data, err := config.Marshal(config.Default())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}

func (a *app) configCheckRun(cmd *cobra.Command, args []string) error {
	path := a.cfgFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	switch cfg.Backend {
	case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("%s: unknown storage backend %q", path, cfg.Backend)
	}
	if !currency.Known(cfg.Currency) {
		return fmt.Errorf("%s: unknown currency %q", path, cfg.Currency)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return err
}
