// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SMTPHost and SMTPPort locate the mail relay.
	// Default to Gmail's submission endpoint.
	SMTPHost string
	SMTPPort int

	// EmailUser is the sender address and SMTP username; EmailPassword is
	// the SMTP secret. When either is empty the mailer reports
	// domain.ErrMailNotConfigured instead of dialing — the process must not
	// crash just because email is unconfigured.
	EmailUser     string
	EmailPassword string

	// NotifyEmails is the internal distribution list that receives a copy
	// of every lead and booking. Comma-separated in NOTIFY_EMAILS.
	NotifyEmails []string

	// AdminEmail and AdminPasswordHash (bcrypt) are the single back-office
	// identity. JWTSecret signs admin session tokens. When any of the three
	// is empty, sign-in reports domain.ErrAuthNotConfigured.
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string

	// JWTTTL is the admin session lifetime. Defaults to 24h.
	JWTTTL time.Duration

	// SeedSecret authorizes POST /seed. When empty, seeding is disabled.
	SeedSecret string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
// Email, auth, and seed variables are intentionally optional: their absence
// degrades the feature, not the process.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		EmailUser:         os.Getenv("EMAIL_USER"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		NotifyEmails:      splitCSV(os.Getenv("NOTIFY_EMAILS")),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SeedSecret:        os.Getenv("SEED_SECRET"),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT is not a number: %q", os.Getenv("SMTP_PORT"))
	}
	cfg.SMTPPort = port

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_TTL is not a duration: %q", os.Getenv("JWT_TTL"))
	}
	cfg.JWTTTL = ttl

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// MailConfigured reports whether SMTP credentials are present.
func (c Config) MailConfigured() bool {
	return c.EmailUser != "" && c.EmailPassword != ""
}

// AuthConfigured reports whether the admin identity is fully configured.
func (c Config) AuthConfigured() bool {
	return c.AdminEmail != "" && c.AdminPasswordHash != "" && c.JWTSecret != ""
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
