package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample exercises if the log is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := db.Seed(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "log is not empty, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d exercises\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 1, "user ID to seed for")
	return cmd
}
