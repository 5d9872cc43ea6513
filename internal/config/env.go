// Package config defines environment variable keys for configuration.
package config

//nolint:gosec // Environment variable keys are not credentials.
const (
	// Server
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	// Backend inventory service
	EnvBackendURL        = "BACKEND_URL"
	EnvBackendTimeout    = "BACKEND_TIMEOUT"
	EnvBackendMaxRetries = "BACKEND_MAX_RETRIES"
	EnvAgentToken        = "AGENT_TOKEN"

	// Google Maps
	EnvGoogleMapsAPIKey = "GOOGLE_MAPS_API_KEY"
	EnvMapsBaseURL      = "MAPS_BASE_URL"
	EnvMapsTimeout      = "MAPS_TIMEOUT"
	EnvDefaultCampus    = "DEFAULT_CAMPUS"

	// Contact directory
	EnvContactsPath = "CONTACTS_CONFIG"
	EnvMaxContacts  = "MAX_CONTACTS"

	// LLM Feature
	EnvLLMProviders = "LLM_PROVIDERS"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_INTENT_MODEL"
	EnvGroqAPIKey   = "GROQ_API_KEY"
	EnvGroqModel    = "GROQ_INTENT_MODEL"

	// Sentry Feature
	EnvSentryDSN         = "SENTRY_DSN"
	EnvSentryEnvironment = "SENTRY_ENVIRONMENT"
	EnvSentryRelease     = "SENTRY_RELEASE"
	EnvSentrySampleRate  = "SENTRY_SAMPLE_RATE"

	// Metrics Auth Feature
	EnvMetricsUsername = "METRICS_USERNAME"
	EnvMetricsPassword = "METRICS_PASSWORD"
)
