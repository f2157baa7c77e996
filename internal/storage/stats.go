package storage

import (
	"context"
	"fmt"
	"time"
)

// DataStats holds aggregate statistics about a user's logged exercises,
// computed in SQL so operator tooling gets the numbers without pulling the
// full collection.
type DataStats struct {
	TotalExercises int64      `json:"total_exercises"`
	TotalSets      int64      `json:"total_sets"`
	WeightedCount  int64      `json:"weighted_count"`
	TotalVolume    float64    `json:"total_volume"`
	FirstLogged    *time.Time `json:"first_logged"`
	LastUpdated    *time.Time `json:"last_updated"`
	Days           []DayStat  `json:"days"`
}

// DayStat holds summary stats for a single workout day bucket.
type DayStat struct {
	Day         string  `json:"day"`
	Count       int64   `json:"count"`
	TotalSets   int64   `json:"total_sets"`
	TotalVolume float64 `json:"total_volume"`
}

// GetDataStats returns aggregate statistics for a user's exercises.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(sets), 0),
		        COUNT(weight),
		        COALESCE(SUM(sets * reps * COALESCE(weight, 0)), 0),
		        MIN(created_at),
		        MAX(updated_at)
		 FROM exercises WHERE user_id = $1`, userID,
	).Scan(&stats.TotalExercises, &stats.TotalSets, &stats.WeightedCount,
		&stats.TotalVolume, &stats.FirstLogged, &stats.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("querying exercise totals: %w", err)
	}

	// Per-day buckets: A-G sort lexically, the literal 'None' sorts last.
	rows, err := db.Pool.Query(ctx,
		`SELECT workout_day,
		        COUNT(*),
		        COALESCE(SUM(sets), 0),
		        COALESCE(SUM(sets * reps * COALESCE(weight, 0)), 0)
		 FROM exercises
		 WHERE user_id = $1
		 GROUP BY workout_day
		 ORDER BY (workout_day = 'None'), workout_day`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying day buckets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d DayStat
		if err := rows.Scan(&d.Day, &d.Count, &d.TotalSets, &d.TotalVolume); err != nil {
			return nil, fmt.Errorf("scanning day bucket: %w", err)
		}
		stats.Days = append(stats.Days, d)
	}
	return stats, rows.Err()
}
