// Package settings is a small disk-backed key-value store for UI-session
// preferences (coaching API key, bodyweight). Keys map to files under a base
// directory via diskv; values are plain strings.
package settings

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("setting not found")

// Known setting keys. The HTTP surface rejects anything else.
const (
	KeyCoachAPIKey  = "coach_api_key"
	KeyBodyweightKg = "bodyweight_kg"
)

// KnownKeys lists the accepted setting keys.
var KnownKeys = []string{KeyCoachAPIKey, KeyBodyweightKg}

// IsKnownKey reports whether key is an accepted setting key.
func IsKnownKey(key string) bool {
	for _, k := range KnownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Store persists settings under a base directory.
type Store struct {
	d *diskv.Diskv
}

// Open creates a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating settings dir %s: %w", dir, err)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 64 * 1024,
	})}, nil
}

// Get returns the value for key, or ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return string(val), nil
}

// Set stores a value for key.
func (s *Store) Set(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erasing setting %s: %w", key, err)
	}
	return nil
}

// All returns every stored key-value pair, sorted by key.
func (s *Store) All() (map[string]string, error) {
	out := make(map[string]string)
	var keys []string
	for key := range s.d.Keys(nil) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		val, err := s.Get(key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out[key] = val
	}
	return out, nil
}
