package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claude/workout-tracker/internal/legacy"
)

func newImportSQLiteCmd() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "import-sqlite <file>",
		Short: "Import exercises from a legacy SQLite tracker database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := legacy.ReadExercises(args[0])
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no exercises found in legacy database")
				return nil
			}

			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			for _, in := range records {
				if _, err := db.CreateExercise(cmd.Context(), userID, in); err != nil {
					return fmt.Errorf("importing %q: %w", in.Name, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d exercises\n", len(records))
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 1, "user ID to import into")
	return cmd
}
