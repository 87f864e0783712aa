package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/soypete/taskroster/pkg/config"
	"github.com/soypete/taskroster/pkg/database"
	"github.com/soypete/taskroster/pkg/repl"
	"github.com/soypete/taskroster/pkg/roster"
)

// app is what every command needs once flags are resolved
type app struct {
	cfg     *config.Config
	session *repl.Session
	store   *database.SQLiteStore
	restore func()
}

// Close releases the store and restores logging
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
	a.restore()
}

// setup resolves configuration, opens the store and seeds it
func setup(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	session := repl.NewSession(cfg.Debug.Verbose)
	restore := repl.ConfigureLogging(session, cmd.ErrOrStderr())

	if cfg.Debug.Verbose {
		source := cfg.Source
		if source == "" {
			source = "defaults"
		}
		log.Printf("session %s, config from %s, database %s", session.ID, source, cfg.Database.Path)
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		restore()
		return nil, err
	}

	return &app{cfg: cfg, session: session, store: store, restore: restore}, nil
}

// resolveConfig applies file, environment and flags, in that order
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configFile != "" {
		cfg, err = config.Load(opts.configFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Override config with flags
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Database.Path = opts.dbPath
	}
	if flags.Changed("no-seed") {
		cfg.Seed.Disabled = opts.noSeed
	}
	if flags.Changed("verbose") {
		cfg.Debug.Verbose = opts.verbose
	}
	if flags.Changed("plain") {
		cfg.UI.Plain = opts.plain
	}

	return cfg, cfg.Validate()
}

// openStore opens the database and fills it with sample rows when empty
func openStore(ctx context.Context, cfg *config.Config) (*database.SQLiteStore, error) {
	dbCfg := database.DefaultConfig()
	dbCfg.Path = cfg.Database.Path

	store, err := database.Open(ctx, dbCfg)
	if err != nil {
		return nil, err
	}

	if cfg.Seed.Disabled {
		return store, nil
	}

	seeded, err := roster.Seed(ctx, store)
	if err != nil {
		// same as a failed CREATE TABLE: report and carry on
		log.Printf("seeding skipped: %v", err)
		return store, nil
	}
	if seeded && cfg.Debug.Verbose {
		log.Printf("seeded %s with %d sample workers", cfg.Database.Path, len(roster.SeedWorkers))
	}

	return store, nil
}

func runMenu(cmd *cobra.Command, opts *options) error {
	a, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	input, err := repl.NewInput(repl.InputConfig{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		HistoryFile: a.cfg.UI.HistoryFile,
		Plain:       a.cfg.UI.Plain,
	})
	if err != nil {
		return err
	}
	defer input.Close()

	return repl.NewMenu(a.store, input, cmd.OutOrStdout(), a.session).Run(cmd.Context())
}

func workersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "workers",
		Short: "Print the workers table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return repl.ShowWorkers(cmd.Context(), a.store, cmd.OutOrStdout())
		},
	}
}

func tasksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Print the tasks table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return repl.ShowTasks(cmd.Context(), a.store, cmd.OutOrStdout())
		},
	}
}

func initCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database tables and sample rows, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.store.CountWorkers(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database %s ready (%d workers)\n", a.store.Path(), n)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskroster version %s\n", version)
		},
	}
}
