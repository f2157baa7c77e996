package settings

import (
	"errors"
	"testing"
)

// TestSetGetRoundTrip verifies basic write/read behavior.
func TestSetGetRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Set(KeyBodyweightKg, "82.5"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := s.Get(KeyBodyweightKg)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "82.5" {
		t.Errorf("value = %q, want %q", got, "82.5")
	}
}

// TestGetMissing verifies the sentinel error for unknown keys.
func TestGetMissing(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := s.Get(KeyCoachAPIKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// TestDelete verifies removal, including the missing-key no-op.
func TestDelete(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Set(KeyCoachAPIKey, "sk-123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete(KeyCoachAPIKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(KeyCoachAPIKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}

	// Deleting again is not an error.
	if err := s.Delete(KeyCoachAPIKey); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

// TestAll verifies enumeration of stored pairs.
func TestAll(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Set(KeyBodyweightKg, "80"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyCoachAPIKey, "sk-456"); err != nil {
		t.Fatal(err)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[KeyBodyweightKg] != "80" || all[KeyCoachAPIKey] != "sk-456" {
		t.Errorf("unexpected contents: %v", all)
	}
}

// TestIsKnownKey verifies the accepted key set.
func TestIsKnownKey(t *testing.T) {
	for _, k := range KnownKeys {
		if !IsKnownKey(k) {
			t.Errorf("IsKnownKey(%q) = false", k)
		}
	}
	if IsKnownKey("password") {
		t.Error("IsKnownKey(password) = true, want false")
	}
}
