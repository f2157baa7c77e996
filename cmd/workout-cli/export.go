package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/claude/workout-tracker/internal/export"
	"github.com/claude/workout-tracker/internal/models"
	"github.com/claude/workout-tracker/internal/viewmodel"
)

func newExportCmd() *cobra.Command {
	var userID int
	var format, output, filter, day, search string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the exercise log as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := viewmodel.DefaultSelection()
			switch filter {
			case "all":
			case "weighted":
				sel.Filter = viewmodel.FilterWeighted
			case "bodyweight":
				sel.Filter = viewmodel.FilterBodyweight
			default:
				return fmt.Errorf("invalid filter %q", filter)
			}
			if day != viewmodel.DayAll && !models.IsValidWorkoutDay(day) {
				return fmt.Errorf("invalid day %q", day)
			}
			sel.Day = day
			sel.Search = search

			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.ListExercises(cmd.Context(), userID)
			if err != nil {
				return err
			}
			filtered := viewmodel.Filtered(records, sel)

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				return export.WriteCSV(w, filtered)
			case "json":
				return export.WriteJSON(w, filtered)
			default:
				return fmt.Errorf("invalid format %q", format)
			}
		},
	}
	cmd.Flags().IntVar(&userID, "user", 1, "user ID")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&filter, "filter", "all", "load filter: all, weighted, or bodyweight")
	cmd.Flags().StringVar(&day, "day", "all", "workout day filter (A-G, None, or all)")
	cmd.Flags().StringVar(&search, "search", "", "name substring filter")
	return cmd
}
