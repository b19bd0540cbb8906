package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"visual-summarizer-api/api/dto/responses"
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/panel"
	"visual-summarizer-api/core/savedpoints"
	"visual-summarizer-api/infrastructure/cache/memory"
	"visual-summarizer-api/infrastructure/settings"
	"visual-summarizer-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "sk-ant-REDACTED"

const takeawaysReply = `## SUMMARY
A short summary of the article.

## KEY POINTS
- The first important point
- The second important point

## STATS
- 42% of readers finish articles`

var articleHTML = `<html><head><title>Article</title></head><body><article><p>` +
	strings.Repeat("Readable article text about a subject worth summarizing. ", 10) +
	`</p></article></body></html>`

// mockSummarizer is a mock implementation of the summarizer
type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, req domain.SummaryRequest) (string, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, req domain.SummaryRequest) (string, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, req)
	}
	if req.Task == domain.ModeVisual {
		return "```mindmap\nTopic\n  Category\n    Leaf\n```", nil
	}
	return takeawaysReply, nil
}

// mockExplainer is a mock implementation of the explainer
type mockExplainer struct {
	explainFunc func(ctx context.Context, req domain.ExplainRequest) (string, error)
}

func (m *mockExplainer) Explain(ctx context.Context, req domain.ExplainRequest) (string, error) {
	if m.explainFunc != nil {
		return m.explainFunc(ctx, req)
	}
	return "A longer explanation of " + req.Point, nil
}

// mockFetcher is a mock implementation of the page fetcher
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) (*domain.Page, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return &domain.Page{URL: url, Title: "Fetched title", HTML: articleHTML}, nil
}

type fixture struct {
	api        humatest.TestAPI
	manager    *panel.Manager
	store      *savedpoints.Store
	settings   *settings.Service
	summarizer *mockSummarizer
	fetcher    *mockFetcher
	flags      *featureflags.StaticManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := memory.NewStore()
	f := &fixture{
		store:      savedpoints.NewStore(kv),
		settings:   settings.NewService(kv, testAPIKey, domain.LanguageEnglish),
		summarizer: &mockSummarizer{},
		fetcher:    &mockFetcher{},
		flags: featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
			featureflags.PageFetchEnabled: true,
		}),
	}
	f.manager = panel.NewManager(panel.Deps{
		Summarizer:  f.summarizer,
		Explainer:   &mockExplainer{},
		Settings:    f.settings,
		SavedPoints: f.store,
		Recent:      f.store.Recent(),
	}, nil, 0)

	_, f.api = humatest.New(t)
	NewPanelHandler(f.manager, f.fetcher, f.flags).RegisterRoutes(f.api)
	NewSavedHandler(f.store, f.store.Recent()).RegisterRoutes(f.api)
	NewSettingsHandler(f.settings, f.settings).RegisterRoutes(f.api)
	return f
}

func (f *fixture) openPanel(t *testing.T) responses.PanelResponse {
	t.Helper()
	resp := f.api.Post("/panels", map[string]interface{}{
		"url":   "https://example.com/article",
		"title": "Article",
		"html":  articleHTML,
	})
	require.Equal(t, 201, resp.Code, resp.Body.String())
	return decodePanel(t, resp)
}

func decodePanel(t *testing.T, resp *httptest.ResponseRecorder) responses.PanelResponse {
	t.Helper()
	var out responses.PanelResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}
