// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, upstream endpoints, and feature flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default values applied when the corresponding env var is unset.
const (
	DefaultPort            = "8000"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultBackendTimeout    = 10 * time.Second
	DefaultBackendMaxRetries = 2

	DefaultMapsBaseURL = "https://maps.googleapis.com"
	DefaultMapsTimeout = 15 * time.Second
	DefaultCampusArea  = "Dartmouth College, Hanover, NH"

	DefaultContactsPath = "contacts_config.yaml"
	DefaultMaxContacts  = 2
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Backend inventory service
	BackendURL        string
	BackendTimeout    time.Duration
	BackendMaxRetries int
	AgentToken        string // Expected Authorization bearer token for /api/chat (empty = presence check only)

	// Google Maps
	GoogleMapsAPIKey string
	MapsBaseURL      string
	MapsTimeout      time.Duration
	DefaultCampus    string // Locality appended to building names when building destination addresses

	// Contact directory
	ContactsPath string
	MaxContacts  int

	// LLM Configuration (optional, NLU disabled when keys empty)
	LLMProviders string // Comma-separated provider order, e.g. "gemini,groq"
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string

	// Sentry (optional, disabled when DSN empty)
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string
	SentrySampleRate  float64

	// Metrics Authentication
	MetricsUsername string
	MetricsPassword string // Empty = no auth on /metrics
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first, then reads from env vars.
func Load() (*Config, error) {
	// Ignore error if .env doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv(EnvPort, DefaultPort),
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, DefaultShutdownTimeout),

		BackendURL:        getEnv(EnvBackendURL, ""),
		BackendTimeout:    getDurationEnv(EnvBackendTimeout, DefaultBackendTimeout),
		BackendMaxRetries: getIntEnv(EnvBackendMaxRetries, DefaultBackendMaxRetries),
		AgentToken:        getEnv(EnvAgentToken, ""),

		GoogleMapsAPIKey: getEnv(EnvGoogleMapsAPIKey, ""),
		MapsBaseURL:      getEnv(EnvMapsBaseURL, DefaultMapsBaseURL),
		MapsTimeout:      getDurationEnv(EnvMapsTimeout, DefaultMapsTimeout),
		DefaultCampus:    getEnv(EnvDefaultCampus, DefaultCampusArea),

		ContactsPath: getEnv(EnvContactsPath, DefaultContactsPath),
		MaxContacts:  getIntEnv(EnvMaxContacts, DefaultMaxContacts),

		LLMProviders: getEnv(EnvLLMProviders, "gemini,groq"),
		GeminiAPIKey: getEnv(EnvGeminiAPIKey, ""),
		GeminiModel:  getEnv(EnvGeminiModel, ""),
		GroqAPIKey:   getEnv(EnvGroqAPIKey, ""),
		GroqModel:    getEnv(EnvGroqModel, ""),

		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentryRelease:     getEnv(EnvSentryRelease, ""),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks required configuration values.
func (c *Config) validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("%s is required", EnvBackendURL)
	}
	if c.MaxContacts < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvMaxContacts, c.MaxContacts)
	}
	if c.BackendMaxRetries < 0 {
		return fmt.Errorf("%s must not be negative, got %d", EnvBackendMaxRetries, c.BackendMaxRetries)
	}
	return nil
}

// getEnv retrieves an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves an integer environment variable with a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getFloatEnv retrieves a float environment variable with a default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getDurationEnv retrieves a duration environment variable with a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
