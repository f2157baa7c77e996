package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var userID int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate training stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := db.GetDataStats(cmd.Context(), userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			fmt.Fprintf(out, "exercises: %d\n", stats.TotalExercises)
			fmt.Fprintf(out, "total sets: %d\n", stats.TotalSets)
			fmt.Fprintf(out, "weighted: %d\n", stats.WeightedCount)
			fmt.Fprintf(out, "total volume: %.1f kg\n", stats.TotalVolume)
			if stats.FirstLogged != nil {
				fmt.Fprintf(out, "first logged: %s\n", stats.FirstLogged.Format("2006-01-02"))
			}
			if stats.LastUpdated != nil {
				fmt.Fprintf(out, "last updated: %s\n", stats.LastUpdated.Format("2006-01-02"))
			}

			if len(stats.Days) > 0 {
				fmt.Fprintln(out)
				tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "DAY\tCOUNT\tSETS\tVOLUME")
				for _, d := range stats.Days {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\n", d.Day, d.Count, d.TotalSets, d.TotalVolume)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 1, "user ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print stats as JSON")
	return cmd
}
