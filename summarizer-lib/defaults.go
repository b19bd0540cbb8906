// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package summarizer

import (
	"os"
	"time"

	"visual-summarizer-api/core/interfaces"
	"visual-summarizer-api/infrastructure/cache/memory"
	"visual-summarizer-api/infrastructure/cache/sqlite"
	httpInfra "visual-summarizer-api/infrastructure/http/standard"
	logrusInfra "visual-summarizer-api/infrastructure/logger/logrus"
)

// DefaultHTTPClient creates a default HTTP client sized for model calls
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewClient(60 * time.Second)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewStore()
}

// DefaultSQLiteCache creates a default SQLite cache with the given file path
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	return sqlite.NewStore(filePath)
}

// DefaultLogger creates a text logger that writes to stderr
func DefaultLogger() interfaces.Logger {
	return logrusInfra.New(logrusInfra.Options{Level: "info", Format: "text", Output: os.Stderr})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite cache
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
)

// WithCacheOption creates a cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "summarizer.db"
			}
			cache, err := DefaultSQLiteCache(opt.FilePath)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").WithCause(err)
			}
			c.Cache = cache
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithVerboseLogging logs to stderr with DefaultLogger
func WithVerboseLogging() Option {
	return func(c *Config) error {
		c.Logger = DefaultLogger()
		return nil
	}
}
