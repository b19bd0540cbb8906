// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, store, model, panel and logging settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains key-value store configuration
	Cache CacheConfig

	// LLM contains summarization model configuration
	LLM LLMConfig

	// Panel contains panel lifecycle configuration
	Panel PanelConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained requests per second allowed per client IP
	RateLimit float64

	// RateBurst is the request burst allowed per client IP
	RateBurst int
}

// CacheConfig holds store backend configuration
type CacheConfig struct {
	// Type specifies the store backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// LLMConfig holds the summarization model configuration
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// PanelConfig holds panel lifecycle configuration
type PanelConfig struct {
	// IdleTimeout closes panels nobody touched for this long
	IdleTimeout time.Duration

	// DefaultLanguage is used when no language was stored
	DefaultLanguage string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Backend is logrus or zap
	Backend string

	// Level is debug, info, warn or error
	Level string

	// Format is json or text
	Format string

	// File routes logs to a rotating file when set
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT", 5),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "summarizer.db"),
			},
		},
		LLM: LLMConfig{
			APIKey:  getEnvOrDefault("ANTHROPIC_API_KEY", ""),
			Model:   getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			BaseURL: getEnvOrDefault("ANTHROPIC_URL", "https://api.anthropic.com/v1/messages"),
			Timeout: getEnvAsDurationOrDefault("LLM_TIMEOUT", 60*time.Second),
		},
		Panel: PanelConfig{
			IdleTimeout:     getEnvAsDurationOrDefault("PANEL_IDLE_TIMEOUT", 30*time.Minute),
			DefaultLanguage: getEnvOrDefault("DEFAULT_LANGUAGE", "en"),
		},
		Log: LogConfig{
			Backend: getEnvOrDefault("LOG_BACKEND", "logrus"),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
			Format:  getEnvOrDefault("LOG_FORMAT", "json"),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s") or whole seconds ("90")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.LLM.Timeout < time.Second {
		return errors.New("llm timeout must be at least 1 second")
	}

	if c.Panel.IdleTimeout < time.Second {
		return errors.New("panel idle timeout must be at least 1 second")
	}

	if c.Panel.DefaultLanguage != "en" && c.Panel.DefaultLanguage != "fr" {
		return errors.New("default language must be 'en' or 'fr'")
	}

	if c.Log.Backend != "logrus" && c.Log.Backend != "zap" {
		return errors.New("log backend must be 'logrus' or 'zap'")
	}

	return nil
}
