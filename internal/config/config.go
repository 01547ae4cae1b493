package config

import (
	"os"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Dataset
	DatasetPath     string        // env: DATASET_PATH
	RefreshInterval time.Duration // env: REFRESH_INTERVAL, 0 disables the background refresher
	TableLimit      int           // rows shown in the at-risk table

	// Snapshot history (optional; disabled when empty)
	DatabaseURL string

	// Session storage (optional; in-memory when empty)
	RedisURL string

	// OIDC (optional; admin endpoints are open when unset)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		DatasetPath:     getEnv("DATASET_PATH", "share_of_model_data.csv"),
		RefreshInterval: getDuration("REFRESH_INTERVAL", 5*time.Minute),
		TableLimit:      20,
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Share of Model"),
		SiteTagline: getEnv("SITE_TAGLINE", "AI Search Visibility Dashboard"),
		SiteFooter:  getEnv("SITE_FOOTER", "Share of Model - AI Search Visibility Dashboard"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HistoryEnabled reports whether the snapshot history store is configured.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// AuthEnabled reports whether OIDC authentication is configured.
func (c *Config) AuthEnabled() bool {
	return c.OIDCIssuer != ""
}
