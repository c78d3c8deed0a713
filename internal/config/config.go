// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// DatabaseConfig holds the database connection settings. DSN accepts either
// a PostgreSQL connection string or a sqlite file path.
type DatabaseConfig struct {
	DSN string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Env string // "development" or "production"

	// Exporter selects the PDF backend: "pdf" for the native renderer,
	// "chrome" for headless-browser printing.
	Exporter string

	// TemplateAssetDir is where template background images live.
	TemplateAssetDir string
}

// Dev reports whether the app runs in development mode.
func (a AppConfig) Dev() bool {
	return a.Env != "production"
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DATABASE_DSN", "adinvoice.db"),
		},
		App: AppConfig{
			Env:              getEnv("APP_ENV", "development"),
			Exporter:         getEnv("EXPORTER", "pdf"),
			TemplateAssetDir: getEnv("TEMPLATE_ASSET_DIR", "assets/templates"),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
