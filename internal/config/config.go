package config

import (
	"os"
	"strconv"

	"dashgen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Memory   MemoryConfig
	Cache    CacheConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// MemoryConfig holds pattern-memory retrieval settings. Defaults match the
// retrieval contract: a 30-day window, 20 fetched, top 5 used, similarity
// cutoff 0.3.
type MemoryConfig struct {
	WindowDays    int
	FetchLimit    int
	UseLimit      int
	MinSimilarity float64
}

// CacheConfig holds analysis cache settings
type CacheConfig struct {
	Size int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Memory: DefaultMemoryConfig(),
		Cache: CacheConfig{
			Size: getEnvIntOrDefault("ANALYSIS_CACHE_SIZE", 128),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// DefaultMemoryConfig returns the pattern-memory retrieval defaults.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		WindowDays:    getEnvIntOrDefault("MEMORY_WINDOW_DAYS", 30),
		FetchLimit:    getEnvIntOrDefault("MEMORY_FETCH_LIMIT", 20),
		UseLimit:      getEnvIntOrDefault("MEMORY_USE_LIMIT", 5),
		MinSimilarity: getEnvFloatOrDefault("MEMORY_MIN_SIMILARITY", 0.3),
	}
}

func validate(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Memory.FetchLimit < config.Memory.UseLimit {
		return errors.ConfigInvalid("memory fetch limit must be >= use limit")
	}
	if config.Cache.Size <= 0 {
		return errors.ConfigInvalid("analysis cache size must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
