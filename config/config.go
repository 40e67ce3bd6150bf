package config

import (
	"os"
	"strconv"
	"strings"
)

// defaultCORSOrigins are the frontends the service is deployed behind.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"https://*.vercel.app",
	"https://resume-genie-orpin.vercel.app",
}

// Config holds all configuration for the application
type Config struct {
	// Gemini Developer API
	GoogleAPIKey string

	// Vertex AI (used when no API key is set)
	ProjectID       string
	Location        string
	CredentialsFile string

	// Gemini Model
	GeminiModel      string
	AITimeoutSeconds int

	// Server
	Port        string
	Debug       bool
	CORSOrigins []string
	MaxUploadMB int

	// Rate limiting (0 disables)
	RateLimitRPS   float64
	RateLimitBurst int

	// PDF rendering
	ChromePath              string
	PDFRenderTimeoutSeconds int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Gemini Developer API
		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),

		// Vertex AI
		ProjectID:       getEnv("PROJECT_ID", ""),
		Location:        getEnv("LOCATION", "us-central1"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),

		// Gemini Model
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash-lite"),
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 60),

		// Server
		Port:        getEnv("PORT", getEnv("BACKEND_PORT", "8000")),
		Debug:       getEnvBool("DEBUG", false),
		CORSOrigins: getEnvList("CORS_ORIGINS", defaultCORSOrigins),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),

		// Rate limiting
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		// PDF rendering
		ChromePath:              getEnv("CHROME_PATH", ""),
		PDFRenderTimeoutSeconds: getEnvInt("PDF_RENDER_TIMEOUT_SECONDS", 30),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	return cfg
}

// UseVertex reports whether the Vertex AI backend should be used instead of
// the Gemini Developer API.
func (c *Config) UseVertex() bool {
	return c.GoogleAPIKey == "" && c.ProjectID != ""
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// One AI backend must be configured
	if c.GoogleAPIKey == "" && c.ProjectID == "" {
		return &ConfigError{Field: "GOOGLE_API_KEY", Message: "GOOGLE_API_KEY or PROJECT_ID must be set"}
	}

	if c.GeminiModel == "" {
		return &ConfigError{Field: "GEMINI_MODEL", Message: "GEMINI_MODEL must not be empty"}
	}

	if c.AITimeoutSeconds <= 0 {
		return &ConfigError{Field: "AI_TIMEOUT_SECONDS", Message: "AI_TIMEOUT_SECONDS must be positive"}
	}
	if c.PDFRenderTimeoutSeconds <= 0 {
		return &ConfigError{Field: "PDF_RENDER_TIMEOUT_SECONDS", Message: "PDF_RENDER_TIMEOUT_SECONDS must be positive"}
	}
	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}

	if c.RateLimitRPS < 0 {
		return &ConfigError{Field: "RATE_LIMIT_RPS", Message: "RATE_LIMIT_RPS must not be negative"}
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return &ConfigError{Field: "RATE_LIMIT_BURST", Message: "RATE_LIMIT_BURST must be positive when rate limiting is enabled"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
