package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxComments != 500 {
		t.Errorf("MaxComments = %d, want 500", cfg.MaxComments)
	}
	if cfg.Order != "time" {
		t.Errorf("Order = %q, want time", cfg.Order)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytpilot.yaml")
	data := `api_key: file-key
max_comments: 200
order: relevance
initial_backoff: 500ms
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", cfg.APIKey)
	}
	if cfg.MaxComments != 200 {
		t.Errorf("MaxComments = %d, want 200", cfg.MaxComments)
	}
	if cfg.Order != "relevance" {
		t.Errorf("Order = %q, want relevance", cfg.Order)
	}
	if cfg.InitialBackoff != 500*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 500ms", cfg.InitialBackoff)
	}
	// Unset keys keep their defaults.
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want default 3", cfg.Workers)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytpilot.yaml")
	if err := os.WriteFile(path, []byte("max_comments: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("YTPILOT_MAX_COMMENTS", "50")
	t.Setenv("YTPILOT_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxComments != 50 {
		t.Errorf("MaxComments = %d, want env override 50", cfg.MaxComments)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.APIKey)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load accepted a missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative max_comments", func(c *Config) { c.MaxComments = -1 }},
		{"bad order", func(c *Config) { c.Order = "popular" }},
		{"zero rate limit", func(c *Config) { c.RateLimit = 0 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"multiplier too small", func(c *Config) { c.BackoffMultiplier = 1.0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
}
