// workout-cli is the operator tool for the workout tracker: seed sample data,
// inspect aggregate stats, export the log, and import legacy SQLite databases.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claude/workout-tracker/internal/config"
	"github.com/claude/workout-tracker/internal/storage"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "workout-cli",
		Short:        "Operator tooling for the workout tracker",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(newSeedCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportSQLiteCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB connects to the configured database.
func openDB(ctx context.Context) (*storage.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return storage.New(ctx, cfg.Database.DSN())
}
