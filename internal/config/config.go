// Package config provides configuration for the wellness service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Oracle (any OpenAI-compatible chat completions endpoint)
	OracleURL     string
	OracleAPIKey  string
	OracleModel   string
	OracleTimeout time.Duration

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:   getEnv("DATABASE_URL", "file:mindscope.db?cache=shared&mode=rwc"),
		OracleURL:     getEnv("ORACLE_URL", "https://api.groq.com/openai"),
		OracleAPIKey:  getEnv("ORACLE_API_KEY", ""),
		OracleModel:   getEnv("ORACLE_MODEL", "llama-3.1-8b-instant"),
		OracleTimeout: time.Duration(getEnvInt("ORACLE_TIMEOUT_MS", 30000)) * time.Millisecond,
		JWTSecret:     getEnv("JWT_SECRET", "mindscope-dev-secret"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_MS", 86400000)) * time.Millisecond,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
