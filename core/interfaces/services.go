// ABOUTME: Service interfaces for the external collaborators of the panel core
// ABOUTME: Every boundary call is a single-shot request returning a result or an error

package interfaces

import (
	"context"

	"visual-summarizer-api/core/domain"
)

// Summarizer produces the free-text model reply for a page.
// Any failure must be returned as an *errors.UpstreamError.
type Summarizer interface {
	Summarize(ctx context.Context, req domain.SummaryRequest) (string, error)
}

// Explainer expands a single key point into a short explanation
type Explainer interface {
	Explain(ctx context.Context, req domain.ExplainRequest) (string, error)
}

// SettingsProvider reads and updates the user-facing settings
type SettingsProvider interface {
	Settings(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, mode domain.Mode, language domain.Language) (domain.Settings, error)
}

// APIKeyStore resolves and replaces the model API key
type APIKeyStore interface {
	APIKey(ctx context.Context) (string, error)
	SetAPIKey(ctx context.Context, key string) error
}

// PageFetcher downloads a page when the shell only provides its URL
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.Page, error)
}
