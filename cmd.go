package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rshep3087/triptui/config"
	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/storage"
	"github.com/Rshep3087/triptui/tracker"
)

const (
	// logFile receives TUI logs when debugging
	logFile = "triptui.log"

	// skipTracker marks commands that run without opening the trips store
	skipTracker = "skip-tracker"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config

	// tracker is opened by the root pre-run unless already set
	tracker     *tracker.Tracker
	ownsTracker bool
}

func newApp() *app {
	return &app{v: viper.New()}
}

// newRootCmd builds the command tree for a.
func newRootCmd(a *app) *cobra.Command {
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A terminal UI and CLI for tracking trip expenses",
		Long: `Track what every day of a trip costs, per category, with running totals and a
spending breakdown. Without a subcommand the terminal UI starts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}

			if cmd.Annotations[skipTracker] == "true" || a.tracker != nil {
				return nil
			}
			return a.openTracker(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if !a.ownsTracker || a.tracker == nil {
				return nil
			}
			return a.tracker.Close()
		},
		RunE: func(c *cobra.Command, _ []string) error {
			// Start TUI when no subcommands are provided
			return a.runTUI(c.Context())
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is triptui.toml in the search paths)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("backend", defaults.Backend, "storage backend: file, sqlite or memory")
	flags.String("data-file", defaults.DataFile, "path of the trips file or database")
	flags.String("currency", defaults.Currency, "ISO 4217 currency code amounts are shown in")
	flags.Bool("watch", defaults.Watch, "reload the TUI when the data file changes")

	// Bind flags to viper
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("backend", flags.Lookup("backend"))
	_ = a.v.BindPFlag("data_file", flags.Lookup("data-file"))
	_ = a.v.BindPFlag("currency", flags.Lookup("currency"))
	_ = a.v.BindPFlag("watch", flags.Lookup("watch"))

	// Add subcommands
	rootCmd.AddCommand(
		newTripsCmd(a),
		newCategoriesCmd(a),
		newDatesCmd(a),
		newAmountsCmd(a),
		newTotalsCmd(a),
		newBackupCmd(a),
		newImportCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := fang.Execute(context.Background(), newRootCmd(newApp())); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the configuration from flags, TRIPTUI_* environment
// variables, a .env file and the TOML config file, in that order.
func (a *app) loadConfig() error {
	// A missing .env file is fine
	_ = godotenv.Load()

	a.v.SetEnvPrefix(strings.ToUpper(config.AppName))
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		// Use config file from the flag.
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(config.AppName)
		a.v.SetConfigType("toml")
		for _, p := range config.SearchPaths() {
			a.v.AddConfigPath(p)
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug("Config file not found", "error", err)
	} else {
		log.Debug("Using config file", "file", a.v.ConfigFileUsed())
	}

	cfg := config.Default()
	if err := a.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	a.cfg = cfg

	// Setup logging
	log.SetLevel(log.InfoLevel)
	if a.cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if !currency.Known(a.cfg.Currency) {
		log.Warn("unknown currency, amounts are shown without a symbol", "currency", a.cfg.Currency)
	}

	return nil
}

func (a *app) openTracker(ctx context.Context) error {
	p, err := storage.Open(a.cfg.Backend, a.cfg.DataFile)
	if err != nil {
		return err
	}

	t, err := tracker.Open(ctx, p, tracker.WithLogger(log.Default()))
	if err != nil {
		_ = p.Close()
		return fmt.Errorf("failed to open trips: %w", err)
	}

	log.Debug("trips opened", "backend", a.cfg.Backend, "path", a.cfg.DataFile)
	a.tracker = t
	a.ownsTracker = true
	return nil
}

func (a *app) runTUI(ctx context.Context) error {
	if a.cfg.Debug {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan struct{}
	if a.cfg.Watch && (a.cfg.Backend == storage.BackendFile || a.cfg.Backend == "") {
		ch, err := storage.Watch(ctx, a.cfg.DataFile, log.Default())
		if err != nil {
			log.Warn("not watching data file", "path", a.cfg.DataFile, "error", err)
		} else {
			changes = ch
		}
	}

	p := tea.NewProgram(newModel(ctx, a.tracker, a.cfg, changes), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
