// Package legacy reads exercise logs out of the old single-file SQLite
// tracker so they can be imported into PostgreSQL.
package legacy

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/claude/workout-tracker/internal/models"
)

// ReadExercises opens a legacy SQLite database and returns its exercises as
// create payloads, validated and in insertion order. Rows that fail
// validation are returned as errors rather than silently dropped.
func ReadExercises(path string) ([]models.ExerciseCreate, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening legacy db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT name, sets, reps, weight, workout_day FROM exercises ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying legacy exercises: %w", err)
	}
	defer rows.Close()

	var out []models.ExerciseCreate
	for rows.Next() {
		var (
			in     models.ExerciseCreate
			weight sql.NullFloat64
			day    sql.NullString
		)
		if err := rows.Scan(&in.Name, &in.Sets, &in.Reps, &weight, &day); err != nil {
			return nil, fmt.Errorf("scanning legacy row: %w", err)
		}
		if weight.Valid {
			w := weight.Float64
			in.Weight = &w
		}
		if day.Valid {
			in.WorkoutDay = day.String
		}
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("legacy row %q: %w", in.Name, err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
