// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// placeholderSecret is the out-of-the-box value of SessionSecret. The server
// refuses to start the app and serves setup instructions while it is unchanged.
const placeholderSecret = "PASTE_YOUR_SESSION_SECRET_HERE"

// SessionSecret signs session tokens. An operator must replace it before
// first use, either here or via FREUNDEBUCH_SESSION_SECRET.
var SessionSecret = placeholderSecret

// Config holds all runtime settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database file.
	DBPath string

	// SessionTokenPath is where the current session token is persisted.
	SessionTokenPath string

	// SessionSecret signs session tokens.
	SessionSecret string

	// SessionTTL is how long a session token stays valid.
	SessionTTL time.Duration

	// GeminiAPIKey authenticates against the generative API. May be empty;
	// gift generation then fails on first use instead of at startup.
	GeminiAPIKey string

	// RequireConfirmation makes sign-in refuse accounts whose email has not
	// been confirmed (see cmd/confirm). Off by default so the self-hosted
	// app works without a mailer.
	RequireConfirmation bool

	// AllowedOrigins configures CORS.
	AllowedOrigins []string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	dbPath := getEnv("FREUNDEBUCH_DB_PATH", "./data/freundebuch.db")

	return &Config{
		Addr:                getEnv("FREUNDEBUCH_ADDR", ":8080"),
		DBPath:              dbPath,
		SessionTokenPath:    filepath.Join(filepath.Dir(dbPath), "session.token"),
		SessionSecret:       getEnv("FREUNDEBUCH_SESSION_SECRET", SessionSecret),
		SessionTTL:          24 * time.Hour,
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		RequireConfirmation: getEnv("FREUNDEBUCH_REQUIRE_CONFIRMATION", "") == "true",
		AllowedOrigins:      parseOrigins(getEnv("FREUNDEBUCH_ALLOWED_ORIGINS", "*")),
	}
}

// SetupRequired reports whether the operator still has to supply a session
// secret. The server serves the setup panel instead of the app while true.
func (c *Config) SetupRequired() bool {
	return c.SessionSecret == "" || c.SessionSecret == placeholderSecret
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
