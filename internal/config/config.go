package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Settings  SettingsConfig  `yaml:"settings"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	Enabled      bool   `yaml:"enabled"`
	JWTSecret    string `yaml:"jwt_secret"`
	TokenTTLMins int    `yaml:"token_ttl_minutes"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type SettingsConfig struct {
	Dir string `yaml:"dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// TokenTTL returns the configured token lifetime, defaulting to 30 minutes.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMins <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(a.TokenTTLMins) * time.Minute
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix WORKOUT_ and underscore-separated paths:
//
//	WORKOUT_SERVER_HOST, WORKOUT_SERVER_PORT,
//	WORKOUT_DB_HOST, WORKOUT_DB_PORT, WORKOUT_DB_NAME,
//	WORKOUT_DB_USER, WORKOUT_DB_PASSWORD, WORKOUT_DB_SSLMODE,
//	WORKOUT_AUTH_ENABLED, WORKOUT_AUTH_JWT_SECRET,
//	WORKOUT_SETTINGS_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WORKOUT_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("WORKOUT_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("WORKOUT_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("WORKOUT_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("WORKOUT_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("WORKOUT_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("WORKOUT_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("WORKOUT_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("WORKOUT_AUTH_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Auth.Enabled = enabled
		}
	}
	if v := os.Getenv("WORKOUT_AUTH_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("WORKOUT_SETTINGS_DIR"); v != "" {
		cfg.Settings.Dir = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required when auth is enabled")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
