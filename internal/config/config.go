package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
	Arena ArenaConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is a redis:// connection string. Empty selects in-memory storage.
	URL string
}

// Enabled reports whether a Redis backend was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// ArenaConfig holds battle room configuration
type ArenaConfig struct {
	RoomTTL       time.Duration
	ActionTimeout time.Duration
	CatalogPath   string // Optional: YAML ability and item catalog
	MutateRetries int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	roomTTL, err := getEnvAsDurationOrDefault("ARENA_ROOM_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	actionTimeout, err := getEnvAsDurationOrDefault("ARENA_ACTION_TIMEOUT", 2*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Arena: ArenaConfig{
			RoomTTL:       roomTTL,
			ActionTimeout: actionTimeout,
			CatalogPath:   os.Getenv("ARENA_CATALOG_PATH"),
			MutateRetries: getEnvAsIntOrDefault("ARENA_MUTATE_RETRIES", 5),
		},
	}

	if cfg.Arena.RoomTTL <= 0 {
		return nil, fmt.Errorf("ARENA_ROOM_TTL must be positive")
	}
	if cfg.Arena.ActionTimeout <= 0 {
		return nil, fmt.Errorf("ARENA_ACTION_TIMEOUT must be positive")
	}
	if cfg.Arena.MutateRetries < 1 {
		return nil, fmt.Errorf("ARENA_MUTATE_RETRIES must be at least 1")
	}

	return cfg, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	return d, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
