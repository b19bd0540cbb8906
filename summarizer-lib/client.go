// ABOUTME: Main client for the Visual Summarizer library
// ABOUTME: Offers extraction, parsing, rendering and panels without HTTP dependencies

package summarizer

import (
	"context"
	"io"
	"strings"

	"visual-summarizer-api/core/extract"
	"visual-summarizer-api/core/interfaces"
	"visual-summarizer-api/core/panel"
	"visual-summarizer-api/core/parse"
	"visual-summarizer-api/core/render"
	"visual-summarizer-api/core/savedpoints"
	"visual-summarizer-api/infrastructure/llm/anthropic"
	"visual-summarizer-api/infrastructure/settings"
)

// Client is the main entry point for the Visual Summarizer library
type Client struct {
	extractor *extract.Extractor
	manager   *panel.Manager
	saved     *savedpoints.Store
	settings  *settings.Service
	config    Config
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	settingsService := settings.NewService(config.Cache, config.APIKey, config.Language)

	if config.Summarizer == nil || config.Explainer == nil {
		llm := anthropic.NewClient(config.HTTPClient, settingsService, config.Logger, anthropic.Config{Model: config.Model})
		if config.Summarizer == nil {
			config.Summarizer = llm
		}
		if config.Explainer == nil {
			config.Explainer = llm
		}
	}

	saved := savedpoints.NewStore(config.Cache)
	extractor := extract.NewExtractor(extract.Options{ReadabilityFallback: config.ReadabilityFallback})
	manager := panel.NewManager(panel.Deps{
		Summarizer:  config.Summarizer,
		Explainer:   config.Explainer,
		Settings:    settingsService,
		SavedPoints: saved,
		Recent:      saved.Recent(),
		Logger:      config.Logger,
	}, extractor, config.IdleTimeout)

	return &Client{
		extractor: extractor,
		manager:   manager,
		saved:     saved,
		settings:  settingsService,
		config:    config,
	}, nil
}

// Close releases the cache when it holds resources
func (c *Client) Close() error {
	if closer, ok := c.config.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Extract returns the readable text and content images of a page
func (c *Client) Extract(html, pageURL string) (Content, error) {
	content, err := c.extractor.ExtractHTML(strings.NewReader(html), pageURL)
	if err != nil {
		return Content{}, NewError(ErrorTypeParsing, "failed to parse page").WithCause(err)
	}
	return content, nil
}

// Parse turns a model reply into a document. It never fails for a valid mode.
func (c *Client) Parse(mode Mode, reply string) (Document, error) {
	if !mode.Valid() {
		return Document{}, ErrInvalidMode
	}
	return parse.Parse(mode, reply), nil
}

// Render renders the section blocks of a document
func (c *Client) Render(doc Document) []Node {
	return render.RenderSections(doc, nil)
}

// RenderHTML renders the section blocks of a document as escaped HTML
func (c *Client) RenderHTML(doc Document) (string, error) {
	return render.HTML(c.Render(doc)...)
}

// Summarize extracts a page, asks the model for a reply and parses it
func (c *Client) Summarize(ctx context.Context, page Page, mode Mode) (Snapshot, error) {
	if !mode.Valid() {
		return Snapshot{}, ErrInvalidMode
	}
	p, err := c.OpenPanel(ctx, page)
	if err != nil {
		return Snapshot{}, err
	}
	defer c.manager.Close(p.ID())

	if _, err := p.SwitchMode(ctx, mode); err != nil {
		return Snapshot{}, err
	}
	return p.Generate(ctx)
}

// OpenPanel opens an interactive panel for a page
func (c *Client) OpenPanel(ctx context.Context, page Page) (*Panel, error) {
	return c.manager.Open(ctx, page)
}

// Panel returns a live panel by id
func (c *Client) Panel(id string) (*Panel, error) {
	return c.manager.Get(id)
}

// ClosePanel closes a panel by id
func (c *Client) ClosePanel(id string) error {
	return c.manager.Close(id)
}

// SavedPoints lists saved points, newest first
func (c *Client) SavedPoints(ctx context.Context) ([]SavedPoint, error) {
	return c.saved.List(ctx)
}

// RecentSummaries lists recent summaries, newest first
func (c *Client) RecentSummaries(ctx context.Context) ([]RecentSummary, error) {
	return c.saved.Recent().List(ctx)
}

// Settings exposes the settings and API key store
func (c *Client) Settings() interfaces.SettingsProvider {
	return c.settings
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Cache == nil {
		return NewError(ErrorTypeConfiguration, "cache is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.HTTPClient == nil && (config.Summarizer == nil || config.Explainer == nil) {
		return NewError(ErrorTypeConfiguration, "HTTP client is required for the default summarizer")
	}

	return nil
}
