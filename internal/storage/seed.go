package storage

import (
	"context"
	"fmt"

	"github.com/claude/workout-tracker/internal/models"
)

func weightOf(kg float64) *float64 { return &kg }

// SampleExercises is the canonical seed set: a three-day split with a mix of
// weighted and bodyweight movements.
var SampleExercises = []models.ExerciseCreate{
	{Name: "Bench Press", Sets: 4, Reps: 8, Weight: weightOf(80), WorkoutDay: "A"},
	{Name: "Squat", Sets: 4, Reps: 10, Weight: weightOf(100), WorkoutDay: "B"},
	{Name: "Deadlift", Sets: 3, Reps: 5, Weight: weightOf(120), WorkoutDay: "B"},
	{Name: "Pull-ups", Sets: 3, Reps: 12, WorkoutDay: "C"},
	{Name: "Overhead Press", Sets: 3, Reps: 10, Weight: weightOf(50), WorkoutDay: "A"},
	{Name: "Barbell Row", Sets: 4, Reps: 10, Weight: weightOf(70), WorkoutDay: "C"},
	{Name: "Dips", Sets: 3, Reps: 15, WorkoutDay: "A"},
	{Name: "Lunges", Sets: 3, Reps: 12, Weight: weightOf(30), WorkoutDay: "B"},
	{Name: "Push-ups", Sets: 3, Reps: 20, WorkoutDay: models.WorkoutDayNone},
	{Name: "Bicep Curls", Sets: 3, Reps: 12, Weight: weightOf(15), WorkoutDay: "C"},
	{Name: "Tricep Extensions", Sets: 3, Reps: 12, Weight: weightOf(25), WorkoutDay: "A"},
	{Name: "Leg Press", Sets: 3, Reps: 15, Weight: weightOf(140), WorkoutDay: "B"},
	{Name: "Lat Pulldown", Sets: 3, Reps: 10, Weight: weightOf(60), WorkoutDay: "C"},
	{Name: "Plank", Sets: 3, Reps: 60, WorkoutDay: models.WorkoutDayNone},
}

// Seed inserts the sample exercises for a user if they have none yet.
// Returns the number of rows inserted.
func (db *DB) Seed(ctx context.Context, userID int) (int, error) {
	count, err := db.CountExercises(ctx, userID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, ex := range SampleExercises {
		if _, err := db.CreateExercise(ctx, userID, ex); err != nil {
			return inserted, fmt.Errorf("seeding %q: %w", ex.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
