package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env           string        `yaml:"env"`
	ListenAddr    string        `yaml:"listen_addr"`
	DatabaseURL   string        `yaml:"database_url"`
	ReportWorkers int           `yaml:"report_workers"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	LogLevel      string        `yaml:"log_level"`
	CookieSecure  bool          `yaml:"cookie_secure"`
}

func defaults() Config {
	return Config{
		Env:           "development",
		ListenAddr:    ":8080",
		ReportWorkers: 2,
		SessionTTL:    12 * time.Hour,
		LogLevel:      "info",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return out, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return out, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return out, nil
}

// Load builds the configuration from defaults, then the YAML file at path (if
// path is non-empty), then environment variables. Environment wins.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path == "" {
		path = os.Getenv("RASBITA_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)

	var errWorkers, errTTL, errSecure error
	cfg.ReportWorkers, errWorkers = getenvInt("REPORT_WORKERS", cfg.ReportWorkers)
	cfg.SessionTTL, errTTL = getenvDuration("SESSION_TTL", cfg.SessionTTL)
	cfg.CookieSecure, errSecure = getenvBool("COOKIE_SECURE", cfg.CookieSecure)
	if err := errors.Join(errWorkers, errTTL, errSecure); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Env {
	case "development", "test", "production":
	default:
		return fmt.Errorf("invalid env: %s", c.Env)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.ReportWorkers < 0 {
		return fmt.Errorf("invalid report_workers: %d", c.ReportWorkers)
	}
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session_ttl must be at least 1m, got %s", c.SessionTTL)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return nil
}

// RequireDatabase reports a missing DATABASE_URL. Kept separate from Validate
// so catalog-only commands run without a database.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for Postgres adapters")
	}
	return nil
}

func (c Config) Production() bool { return c.Env == "production" }
