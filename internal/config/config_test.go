package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Upstream.BaseURL != "https://dummyjson.com" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout() != 30*time.Second {
		t.Errorf("Upstream.Timeout() = %v, want 30s", cfg.Upstream.Timeout())
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Errorf("App.Addr() = %q", cfg.App.Addr())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://localhost:9000")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "5")
	t.Setenv("APP_PORT", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Upstream.BaseURL != "http://localhost:9000" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout() != 5*time.Second {
		t.Errorf("Upstream.Timeout() = %v, want 5s", cfg.Upstream.Timeout())
	}
	if cfg.App.Port != "3000" {
		t.Errorf("App.Port = %q", cfg.App.Port)
	}
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want fallback 30", cfg.Upstream.TimeoutSeconds)
	}
}
