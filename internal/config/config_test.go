package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "workouts"
  user: "workouts"
  password: "secret"
  sslmode: "disable"
auth:
  enabled: true
  jwt_secret: "test-secret-123"
  token_ttl_minutes: 45
settings:
  dir: "/var/lib/workout-tracker/settings"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "workouts" {
		t.Errorf("database.name = %q, want %q", cfg.Database.Name, "workouts")
	}
	if !cfg.Auth.Enabled {
		t.Error("auth.enabled = false, want true")
	}
	if cfg.Auth.JWTSecret != "test-secret-123" {
		t.Errorf("auth.jwt_secret = %q, want %q", cfg.Auth.JWTSecret, "test-secret-123")
	}
	if got := cfg.Auth.TokenTTL().Minutes(); got != 45 {
		t.Errorf("token TTL = %.0f minutes, want 45", got)
	}
	if cfg.Settings.Dir != "/var/lib/workout-tracker/settings" {
		t.Errorf("settings.dir = %q", cfg.Settings.Dir)
	}
}

// TestEnvOverride verifies that WORKOUT_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("WORKOUT_SERVER_PORT", "9999")
	t.Setenv("WORKOUT_DB_HOST", "db.internal")
	t.Setenv("WORKOUT_AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("database.host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("auth.jwt_secret = %q, want %q", cfg.Auth.JWTSecret, "env-secret")
	}
}

// TestValidation verifies required-field checks.
func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing server port",
			yaml: `
database:
  host: "localhost"
  port: 5432
  name: "workouts"
  user: "workouts"
`,
		},
		{
			name: "missing database name",
			yaml: `
server:
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "workouts"
`,
		},
		{
			name: "auth enabled without secret",
			yaml: `
server:
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "workouts"
  user: "workouts"
auth:
  enabled: true
`,
		},
		{
			name: "tailscale enabled without hostname",
			yaml: `
server:
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "workouts"
  user: "workouts"
tailscale:
  enabled: true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, tt.yaml)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// TestDSN verifies the connection string format and the sslmode default.
func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, Name: "workouts", User: "app", Password: "pw"}
	want := "postgres://app:pw@localhost:5432/workouts?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	d.SSLMode = "require"
	want = "postgres://app:pw@localhost:5432/workouts?sslmode=require"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
