package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WorkoutDayNone marks an exercise performed every day rather than on a
// specific split day.
const WorkoutDayNone = "None"

// WorkoutDays is the closed label set for training split days, in canonical
// display order. "None" sorts after the lettered days.
var WorkoutDays = []string{"A", "B", "C", "D", "E", "F", "G", WorkoutDayNone}

// IsValidWorkoutDay reports whether day is one of the closed label set.
func IsValidWorkoutDay(day string) bool {
	for _, d := range WorkoutDays {
		if d == day {
			return true
		}
	}
	return false
}

// Exercise is one logged exercise. Weight is nil for bodyweight exercises;
// nil is distinct from zero and never participates in numeric comparisons.
type Exercise struct {
	ID         int64     `json:"id"`
	UserID     int       `json:"-"`
	Name       string    `json:"name"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     *float64  `json:"weight"`
	WorkoutDay string    `json:"workout_day"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsBodyweight reports whether the exercise carries no external load.
func (e Exercise) IsBodyweight() bool {
	return e.Weight == nil
}

// Volume returns sets * reps * weight. Bodyweight exercises contribute 0.
func (e Exercise) Volume() float64 {
	if e.Weight == nil {
		return 0
	}
	return float64(e.Sets) * float64(e.Reps) * *e.Weight
}

// ExerciseCreate is the payload for creating an exercise.
type ExerciseCreate struct {
	Name       string   `json:"name"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight"`
	WorkoutDay string   `json:"workout_day"`
}

// Validate enforces the form invariants before a record reaches storage or
// the view-model. An empty workout day defaults to "A".
func (c *ExerciseCreate) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(c.Name) > 100 {
		return fmt.Errorf("name must be at most 100 characters")
	}
	if c.Sets < 1 || c.Sets > 20 {
		return fmt.Errorf("sets must be between 1 and 20")
	}
	if c.Reps < 1 || c.Reps > 100 {
		return fmt.Errorf("reps must be between 1 and 100")
	}
	if c.Weight != nil && *c.Weight <= 0 {
		return fmt.Errorf("weight must be positive, or null for bodyweight")
	}
	if c.WorkoutDay == "" {
		c.WorkoutDay = "A"
	}
	if !IsValidWorkoutDay(c.WorkoutDay) {
		return fmt.Errorf("workout_day must be one of A-G or %q", WorkoutDayNone)
	}
	return nil
}

// ExerciseUpdate is a partial update. Nil fields are left untouched.
// WeightSet distinguishes "weight omitted" from an explicit null that
// converts the exercise to bodyweight.
type ExerciseUpdate struct {
	Name       *string
	Sets       *int
	Reps       *int
	Weight     *float64
	WeightSet  bool
	WorkoutDay *string
}

func (u *ExerciseUpdate) UnmarshalJSON(data []byte) error {
	type fields struct {
		Name       *string  `json:"name"`
		Sets       *int     `json:"sets"`
		Reps       *int     `json:"reps"`
		Weight     *float64 `json:"weight"`
		WorkoutDay *string  `json:"workout_day"`
	}
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	_, weightSet := raw["weight"]
	*u = ExerciseUpdate{
		Name:       f.Name,
		Sets:       f.Sets,
		Reps:       f.Reps,
		Weight:     f.Weight,
		WeightSet:  weightSet,
		WorkoutDay: f.WorkoutDay,
	}
	return nil
}

// Validate checks whichever fields are present.
func (u *ExerciseUpdate) Validate() error {
	if u.Name != nil {
		trimmed := strings.TrimSpace(*u.Name)
		if trimmed == "" {
			return fmt.Errorf("name cannot be empty")
		}
		if len(trimmed) > 100 {
			return fmt.Errorf("name must be at most 100 characters")
		}
		u.Name = &trimmed
	}
	if u.Sets != nil && (*u.Sets < 1 || *u.Sets > 20) {
		return fmt.Errorf("sets must be between 1 and 20")
	}
	if u.Reps != nil && (*u.Reps < 1 || *u.Reps > 100) {
		return fmt.Errorf("reps must be between 1 and 100")
	}
	if u.Weight != nil && *u.Weight <= 0 {
		return fmt.Errorf("weight must be positive, or null for bodyweight")
	}
	if u.WorkoutDay != nil && !IsValidWorkoutDay(*u.WorkoutDay) {
		return fmt.Errorf("workout_day must be one of A-G or %q", WorkoutDayNone)
	}
	return nil
}
