// taskroster is a small data-entry tool for workers and the tasks assigned
// to them, kept in a local SQLite file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// options holds the persistent flags
type options struct {
	configFile string
	dbPath     string
	noSeed     bool
	verbose    bool
	plain      bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "taskroster",
		Short: "Track workers and their tasks in a local database",
		Long: `taskroster keeps a list of workers and the tasks assigned to them in a
SQLite file. Run without a subcommand to open the interactive menu.

An empty database is filled with three sample workers and three sample
tasks on first use unless seeding is disabled.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Path to config file (default: .taskroster.json or .taskroster.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to the database file (default: placeholder.db)")
	rootCmd.PersistentFlags().BoolVar(&opts.noSeed, "no-seed", false, "Do not add sample rows to an empty database")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Read input without line editing")

	// Add commands
	rootCmd.AddCommand(workersCmd(opts))
	rootCmd.AddCommand(tasksCmd(opts))
	rootCmd.AddCommand(initCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}
