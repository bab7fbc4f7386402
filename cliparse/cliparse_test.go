// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg != Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("VIEW_SLUG_SALT", "test-slug")
	t.Setenv("PROPOSALS_URL", "https://example.com/proposals.json")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("DESCRIPTION_LIMIT", "1")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database settings: %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.ViewSlugSalt != "test-slug" {
		t.Errorf("expected slug salt from env, got %q", cfg.ViewSlugSalt)
	}
	if cfg.ProposalsURL != "https://example.com/proposals.json" {
		t.Errorf("unexpected proposals URL %q", cfg.ProposalsURL)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.FetchTimeout)
	}
	if cfg.DescriptionLimit != 1 {
		t.Errorf("expected description limit 1, got %d", cfg.DescriptionLimit)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "--slug-salt", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected database URL from flag, got %q", cfg.DatabaseURL)
	}
	if cfg.ViewSlugSalt != "s2" {
		t.Errorf("expected slug salt from flag, got %q", cfg.ViewSlugSalt)
	}
}

func TestParseFlags_InvalidEnv(t *testing.T) {
	tests := map[string]string{
		"PORT":              "not-a-number",
		"FETCH_TIMEOUT":     "soon",
		"DESCRIPTION_LIMIT": "many",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := ParseFlags([]string{}); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestParseFlags_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "port: 4000\nproposals_url: ./proposals.json\nview_slug_salt: from-file\nfetch_timeout: 5s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 4000 || cfg.ProposalsURL != "./proposals.json" || cfg.ViewSlugSalt != "from-file" {
		t.Errorf("config file not applied: %+v", cfg)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.FetchTimeout)
	}

	// env beats the file, flags beat env
	t.Setenv("PORT", "5000")
	cfg, err = ParseFlags([]string{"-c", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 5000 {
		t.Errorf("env should override file: expected 5000, got %d", cfg.Port)
	}

	cfg, err = ParseFlags([]string{"-c", path, "-p", "6000"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 6000 {
		t.Errorf("flag should override env: expected 6000, got %d", cfg.Port)
	}
}

func TestParseFlags_ConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("description_limit: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROPOSAL_BROWSER_CONFIG", path)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DescriptionLimit != 3 {
		t.Errorf("expected description limit 3, got %d", cfg.DescriptionLimit)
	}
}

func TestParseFlags_MissingConfigFile(t *testing.T) {
	if _, err := ParseFlags([]string{"-c", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"port too low", func(c *Config) { c.Port = 0 }},
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"no proposals url", func(c *Config) { c.ProposalsURL = "" }},
		{"bad database type", func(c *Config) { c.DatabaseType = "mysql" }},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"zero description limit", func(c *Config) { c.DescriptionLimit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := Defaults().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidateServe(t *testing.T) {
	cfg := Defaults()
	if err := cfg.ValidateServe(); err == nil {
		t.Error("expected error without slug salt")
	}

	cfg.ViewSlugSalt = "salt"
	if err := cfg.ValidateServe(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.DatabaseURL = ""
	if err := cfg.ValidateServe(); err == nil {
		t.Error("expected error without database URL")
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should not be an error: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PROPOSAL_BROWSER_TEST_VALUE=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROPOSAL_BROWSER_TEST_VALUE", "")
	os.Unsetenv("PROPOSAL_BROWSER_TEST_VALUE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("PROPOSAL_BROWSER_TEST_VALUE"); got != "loaded" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
