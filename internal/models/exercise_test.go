package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func fptr(v float64) *float64 { return &v }

// TestVolume verifies the volume formula and the bodyweight zero.
func TestVolume(t *testing.T) {
	weighted := Exercise{Sets: 3, Reps: 5, Weight: fptr(100)}
	if got := weighted.Volume(); got != 1500 {
		t.Errorf("volume = %v, want 1500", got)
	}

	bodyweight := Exercise{Sets: 3, Reps: 20}
	if got := bodyweight.Volume(); got != 0 {
		t.Errorf("bodyweight volume = %v, want 0", got)
	}
	if !bodyweight.IsBodyweight() {
		t.Error("IsBodyweight = false, want true")
	}
}

// TestCreateValidate verifies the form invariants.
func TestCreateValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ExerciseCreate
		wantErr bool
	}{
		{"valid weighted", ExerciseCreate{Name: "Squat", Sets: 3, Reps: 5, Weight: fptr(100), WorkoutDay: "A"}, false},
		{"valid bodyweight", ExerciseCreate{Name: "Plank", Sets: 3, Reps: 1, WorkoutDay: "None"}, false},
		{"empty name", ExerciseCreate{Name: "  ", Sets: 3, Reps: 5}, true},
		{"name too long", ExerciseCreate{Name: strings.Repeat("x", 101), Sets: 3, Reps: 5}, true},
		{"zero sets", ExerciseCreate{Name: "Squat", Sets: 0, Reps: 5}, true},
		{"too many sets", ExerciseCreate{Name: "Squat", Sets: 21, Reps: 5}, true},
		{"zero reps", ExerciseCreate{Name: "Squat", Sets: 3, Reps: 0}, true},
		{"too many reps", ExerciseCreate{Name: "Squat", Sets: 3, Reps: 101}, true},
		{"negative weight", ExerciseCreate{Name: "Squat", Sets: 3, Reps: 5, Weight: fptr(-5)}, true},
		{"zero weight", ExerciseCreate{Name: "Squat", Sets: 3, Reps: 5, Weight: fptr(0)}, true},
		{"bad day", ExerciseCreate{Name: "Squat", Sets: 3, Reps: 5, WorkoutDay: "H"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCreateValidateDefaultsDay verifies an empty day defaults to A and the
// name is trimmed.
func TestCreateValidateDefaultsDay(t *testing.T) {
	in := ExerciseCreate{Name: "  Squat  ", Sets: 3, Reps: 5}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if in.WorkoutDay != "A" {
		t.Errorf("day = %q, want A", in.WorkoutDay)
	}
	if in.Name != "Squat" {
		t.Errorf("name = %q, want trimmed", in.Name)
	}
}

// TestUpdateUnmarshalWeightPresence verifies the three weight cases: omitted,
// explicit null, and a value.
func TestUpdateUnmarshalWeightPresence(t *testing.T) {
	var omitted ExerciseUpdate
	if err := json.Unmarshal([]byte(`{"sets": 5}`), &omitted); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if omitted.WeightSet {
		t.Error("omitted weight: WeightSet = true, want false")
	}

	var nulled ExerciseUpdate
	if err := json.Unmarshal([]byte(`{"weight": null}`), &nulled); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !nulled.WeightSet || nulled.Weight != nil {
		t.Errorf("null weight: WeightSet = %v, Weight = %v, want set and nil", nulled.WeightSet, nulled.Weight)
	}

	var valued ExerciseUpdate
	if err := json.Unmarshal([]byte(`{"weight": 82.5}`), &valued); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !valued.WeightSet || valued.Weight == nil || *valued.Weight != 82.5 {
		t.Errorf("valued weight: WeightSet = %v, Weight = %v", valued.WeightSet, valued.Weight)
	}
}

// TestUpdateValidate verifies partial-update validation.
func TestUpdateValidate(t *testing.T) {
	empty := ""
	bad := 0
	day := "H"

	for name, u := range map[string]ExerciseUpdate{
		"empty name": {Name: &empty},
		"zero sets":  {Sets: &bad},
		"bad day":    {WorkoutDay: &day},
	} {
		if err := u.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	ok := ExerciseUpdate{Weight: fptr(60), WeightSet: true}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid update: %v", err)
	}
}

// TestIsValidWorkoutDay verifies the closed label set.
func TestIsValidWorkoutDay(t *testing.T) {
	for _, d := range WorkoutDays {
		if !IsValidWorkoutDay(d) {
			t.Errorf("IsValidWorkoutDay(%q) = false", d)
		}
	}
	for _, d := range []string{"H", "a", "none", ""} {
		if IsValidWorkoutDay(d) {
			t.Errorf("IsValidWorkoutDay(%q) = true", d)
		}
	}
}
