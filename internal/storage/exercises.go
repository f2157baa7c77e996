package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/claude/workout-tracker/internal/models"
)

const exerciseColumns = `id, user_id, name, sets, reps, weight, workout_day, created_at, updated_at`

// ListExercises returns all exercises for a user in insertion order. The
// view-model relies on this ordering as its "no sort key" baseline.
func (db *DB) ListExercises(ctx context.Context, userID int) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+exerciseColumns+`
		 FROM exercises
		 WHERE user_id = $1
		 ORDER BY id ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// GetExercise retrieves a single exercise by ID.
func (db *DB) GetExercise(ctx context.Context, id int64, userID int) (*models.Exercise, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+exerciseColumns+`
		 FROM exercises
		 WHERE id = $1 AND user_id = $2`,
		id, userID)

	e, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// CreateExercise inserts a new exercise and returns the stored row.
func (db *DB) CreateExercise(ctx context.Context, userID int, in models.ExerciseCreate) (*models.Exercise, error) {
	row := db.Pool.QueryRow(ctx,
		`INSERT INTO exercises (user_id, name, sets, reps, weight, workout_day)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+exerciseColumns,
		userID, in.Name, in.Sets, in.Reps, in.Weight, in.WorkoutDay)

	e, err := scanExercise(row)
	if err != nil {
		return nil, fmt.Errorf("inserting exercise: %w", err)
	}
	return &e, nil
}

// UpdateExercise applies a partial update and returns the stored row. An
// explicitly null weight converts the exercise to bodyweight; an omitted
// weight leaves it untouched.
func (db *DB) UpdateExercise(ctx context.Context, id int64, userID int, in models.ExerciseUpdate) (*models.Exercise, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id, userID}

	addArg := func(clause string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf(clause, len(args)))
	}

	if in.Name != nil {
		addArg("name = $%d", *in.Name)
	}
	if in.Sets != nil {
		addArg("sets = $%d", *in.Sets)
	}
	if in.Reps != nil {
		addArg("reps = $%d", *in.Reps)
	}
	if in.WeightSet {
		addArg("weight = $%d", in.Weight)
	}
	if in.WorkoutDay != nil {
		addArg("workout_day = $%d", *in.WorkoutDay)
	}

	row := db.Pool.QueryRow(ctx,
		`UPDATE exercises SET `+strings.Join(sets, ", ")+`
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+exerciseColumns,
		args...)

	e, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating exercise: %w", err)
	}
	return &e, nil
}

// DeleteExercise removes an exercise. Returns ErrNotFound if no row matched.
func (db *DB) DeleteExercise(ctx context.Context, id int64, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM exercises WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountExercises returns the number of exercises a user has logged.
func (db *DB) CountExercises(ctx context.Context, userID int) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercises WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return count, nil
}

func scanExercise(row pgx.Row) (models.Exercise, error) {
	var e models.Exercise
	err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.Sets, &e.Reps,
		&e.Weight, &e.WorkoutDay, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Exercise{}, pgx.ErrNoRows
		}
		return models.Exercise{}, fmt.Errorf("scanning exercise: %w", err)
	}
	return e, nil
}
