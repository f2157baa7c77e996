package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/claude/workout-tracker/internal/models"
)

func sample() []models.Exercise {
	weight := 102.5
	return []models.Exercise{
		{ID: 1, Name: "Squat", Sets: 3, Reps: 5, Weight: &weight, WorkoutDay: "A"},
		{ID: 2, Name: "Plank", Sets: 3, Reps: 60, WorkoutDay: models.WorkoutDayNone},
	}
}

// TestWriteCSV verifies the column order and the empty weight cell for
// bodyweight exercises.
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	wantHeader := "id,name,sets,reps,weight,workout_day"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}
	if rows[1][4] != "102.5" {
		t.Errorf("weighted cell = %q, want 102.5", rows[1][4])
	}
	if rows[2][4] != "" {
		t.Errorf("bodyweight cell = %q, want empty", rows[2][4])
	}
	if rows[2][5] != models.WorkoutDayNone {
		t.Errorf("day cell = %q, want None", rows[2][5])
	}
}

// TestWriteCSVEmpty verifies an empty list still writes a header.
func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "id,name,") {
		t.Errorf("missing header: %q", buf.String())
	}
}

// TestWriteJSON verifies round-tripping and the null weight.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got []models.Exercise
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Weight == nil || *got[0].Weight != 102.5 {
		t.Errorf("weight = %v, want 102.5", got[0].Weight)
	}
	if got[1].Weight != nil {
		t.Errorf("bodyweight weight = %v, want nil", got[1].Weight)
	}
}

// TestWriteJSONEmpty verifies nil serializes as an empty array.
func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q, want []", buf.String())
	}
}
