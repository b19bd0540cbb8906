// ABOUTME: Configuration options for the Visual Summarizer library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package summarizer

import (
	"time"

	"visual-summarizer-api/core/interfaces"
)

// Config holds the configuration for the client
type Config struct {
	// Cache is the durable store for saved points and settings
	Cache interfaces.Cache

	// HTTPClient is used by the default summarizer
	HTTPClient interfaces.HTTPClient

	// Logger receives panel and model client logs
	Logger interfaces.Logger

	// Summarizer and Explainer default to the Anthropic client
	Summarizer interfaces.Summarizer
	Explainer  interfaces.Explainer

	// APIKey is used when no key has been stored
	APIKey string

	// Model overrides the default Anthropic model
	Model string

	// Language is the default prompt language
	Language Language

	// IdleTimeout closes untouched panels
	IdleTimeout time.Duration

	// ReadabilityFallback enables go-readability before the cleaned body
	ReadabilityFallback bool
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithSummarizer replaces the model client used for summaries and, when it
// also implements Explainer, for point details
func WithSummarizer(s interfaces.Summarizer) Option {
	return func(c *Config) error {
		c.Summarizer = s
		if e, ok := s.(interfaces.Explainer); ok && c.Explainer == nil {
			c.Explainer = e
		}
		return nil
	}
}

// WithExplainer sets the point detail provider
func WithExplainer(e interfaces.Explainer) Option {
	return func(c *Config) error {
		c.Explainer = e
		return nil
	}
}

// WithAPIKey sets the Anthropic API key
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = key
		return nil
	}
}

// WithModel sets the Anthropic model
func WithModel(model string) Option {
	return func(c *Config) error {
		c.Model = model
		return nil
	}
}

// WithLanguage sets the default prompt language
func WithLanguage(lang Language) Option {
	return func(c *Config) error {
		if !lang.Valid() {
			return NewError(ErrorTypeConfiguration, "language must be en or fr").
				WithContext("language", string(lang))
		}
		c.Language = lang
		return nil
	}
}

// WithIdleTimeout sets how long an untouched panel is kept
func WithIdleTimeout(d time.Duration) Option {
	return func(c *Config) error {
		c.IdleTimeout = d
		return nil
	}
}

// WithReadabilityFallback enables or disables the go-readability fallback
func WithReadabilityFallback(enabled bool) Option {
	return func(c *Config) error {
		c.ReadabilityFallback = enabled
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:       DefaultMemoryCache(),
		HTTPClient:  DefaultHTTPClient(),
		Logger:      QuietLogger(),
		Language:    LanguageEnglish,
		IdleTimeout: 30 * time.Minute,
	}
}
