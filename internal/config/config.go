package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Store   StoreConfig
	Catalog CatalogConfig
	Admin   AdminConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// StoreConfig holds configuration for the local persistent store.
type StoreConfig struct {
	// Dir is the directory the cart and order log are persisted under.
	// When empty, state lives in memory for the session only.
	Dir string
}

// CatalogConfig holds configuration for the remote product catalogue.
type CatalogConfig struct {
	BaseURL string
}

// AdminConfig holds the admin gate credentials and the remote aggregation
// API the dashboard reads from.
type AdminConfig struct {
	Email      string
	Password   string
	APIBaseURL string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Store: StoreConfig{
			Dir: getEnv("STORE_DIR", "data/store"),
		},
		Catalog: CatalogConfig{
			BaseURL: getEnv("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		},
		Admin: AdminConfig{
			Email:      getEnv("ADMIN_EMAIL", "admin@demo.com"),
			Password:   getEnv("ADMIN_PASSWORD", "admin123"),
			APIBaseURL: getEnv("ADMIN_API_BASE_URL", "https://api.freeapi.app/api/v1"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalogue base URL is required")
	}

	if c.Admin.APIBaseURL == "" {
		return fmt.Errorf("admin API base URL is required")
	}

	if c.Admin.Email == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin credentials are required")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
