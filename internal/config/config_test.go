package config

import (
	"os"
	"strings"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RASBITA_CONFIG", "APP_ENV", "LISTEN_ADDR", "DATABASE_URL", "REPORT_WORKERS", "SESSION_TTL", "LOG_LEVEL", "COOKIE_SECURE"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" || cfg.ReportWorkers != 2 || cfg.SessionTTL != 12*time.Hour {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.RequireDatabase(); err == nil {
		t.Error("expected RequireDatabase to fail without DATABASE_URL")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rasbita.yaml")
	body := "env: production\nlisten_addr: \":9000\"\nreport_workers: 4\nsession_ttl: 30m\ncookie_secure: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	clearEnv(t)
	t.Setenv("REPORT_WORKERS", "8")
	t.Setenv("DATABASE_URL", "postgres://localhost/rasbita")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Production() || cfg.ListenAddr != ":9000" || !cfg.CookieSecure || cfg.SessionTTL != 30*time.Minute {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.ReportWorkers != 8 {
		t.Errorf("ReportWorkers = %d, want env override 8", cfg.ReportWorkers)
	}
	if err := cfg.RequireDatabase(); err != nil {
		t.Errorf("RequireDatabase: %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Env = "staging" },
		func(c *Config) { c.ReportWorkers = -1 },
		func(c *Config) { c.SessionTTL = time.Second },
		func(c *Config) { c.LogLevel = "loud" },
		func(c *Config) { c.ListenAddr = "" },
	}
	for i, mutate := range bad {
		cfg := defaults()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRejectsMalformedEnv(t *testing.T) {
	cases := map[string]string{
		"REPORT_WORKERS": "abc",
		"SESSION_TTL":    "12",
		"COOKIE_SECURE":  "sometimes",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load("")
			if err == nil || !strings.Contains(err.Error(), key) {
				t.Errorf("%s=%q: expected error naming the variable, got %v", key, value, err)
			}
		})
	}
}
