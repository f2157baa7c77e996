// Package export serializes exercise lists to downloadable tabular formats.
// It consumes the filtered, sorted list produced by the view-model; pagination
// never applies to exports.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/claude/workout-tracker/internal/models"
)

// csvHeader is the column order for CSV exports.
var csvHeader = []string{"id", "name", "sets", "reps", "weight", "workout_day"}

// WriteCSV writes the exercises as CSV. Bodyweight exercises get an empty
// weight cell rather than a zero.
func WriteCSV(w io.Writer, exercises []models.Exercise) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range exercises {
		weight := ""
		if e.Weight != nil {
			weight = strconv.FormatFloat(*e.Weight, 'f', -1, 64)
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			strconv.Itoa(e.Sets),
			strconv.Itoa(e.Reps),
			weight,
			e.WorkoutDay,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the exercises as an indented JSON array. An empty list
// serializes as [] rather than null.
func WriteJSON(w io.Writer, exercises []models.Exercise) error {
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exercises)
}
