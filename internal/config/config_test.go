package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.DatasetPath != "share_of_model_data.csv" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Errorf("RefreshInterval = %v, want 5m", cfg.RefreshInterval)
	}
	if cfg.TableLimit != 20 {
		t.Errorf("TableLimit = %d, want 20", cfg.TableLimit)
	}
	if cfg.SiteTitle != "Share of Model" {
		t.Errorf("SiteTitle = %q", cfg.SiteTitle)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("DATASET_PATH", "/data/keywords.csv")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("SITE_TITLE", "Internal Dashboard")

	cfg := Load()

	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.DatasetPath != "/data/keywords.csv" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("RefreshInterval = %v, want 30s", cfg.RefreshInterval)
	}
	if cfg.SiteTitle != "Internal Dashboard" {
		t.Errorf("SiteTitle = %q", cfg.SiteTitle)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "not-a-duration")

	cfg := Load()

	if cfg.RefreshInterval != 5*time.Minute {
		t.Errorf("RefreshInterval = %v, want 5m fallback", cfg.RefreshInterval)
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"staging", false},
	}

	for _, tt := range tests {
		cfg := &Config{Env: tt.env}
		if got := cfg.IsDev(); got != tt.expected {
			t.Errorf("IsDev() with Env=%q = %v, want %v", tt.env, got, tt.expected)
		}
	}
}

func TestHistoryEnabled(t *testing.T) {
	cfg := &Config{}
	if cfg.HistoryEnabled() {
		t.Error("HistoryEnabled() = true with empty DatabaseURL")
	}
	cfg.DatabaseURL = "postgres://localhost/shareofmodel"
	if !cfg.HistoryEnabled() {
		t.Error("HistoryEnabled() = false with DatabaseURL set")
	}
}

func TestAuthEnabled(t *testing.T) {
	cfg := &Config{}
	if cfg.AuthEnabled() {
		t.Error("AuthEnabled() = true with no OIDC issuer")
	}
	cfg.OIDCIssuer = "https://auth.example.com"
	if !cfg.AuthEnabled() {
		t.Error("AuthEnabled() = false with OIDC issuer set")
	}
}
