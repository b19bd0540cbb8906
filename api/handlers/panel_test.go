package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"visual-summarizer-api/api/dto/responses"
	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelHandler_RegisterRoutes(t *testing.T) {
	f := newFixture(t)
	openapi := f.api.OpenAPI()

	require.NotNil(t, openapi.Paths["/panels"])
	assert.NotNil(t, openapi.Paths["/panels"].Post)
	require.NotNil(t, openapi.Paths["/panels/{id}"])
	assert.NotNil(t, openapi.Paths["/panels/{id}"].Get)
	assert.NotNil(t, openapi.Paths["/panels/{id}"].Delete)
	for _, path := range []string{"/panels/{id}/generate", "/panels/{id}/mode", "/panels/{id}/points/save", "/panels/{id}/points/expand", "/panels/{id}/summary/save"} {
		require.NotNil(t, openapi.Paths[path], path)
		assert.NotNil(t, openapi.Paths[path].Post, path)
	}
}

func TestPanelHandler_OpenPanel(t *testing.T) {
	f := newFixture(t)

	out := f.openPanel(t)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "https://example.com/article", out.URL)
	assert.Equal(t, domain.PhaseWelcome, out.Phase)
	assert.Equal(t, domain.ModeTakeaways, out.Mode)
	assert.Nil(t, out.Document)
	assert.NotNil(t, out.Images)
	assert.Equal(t, "vs-panel vs-visible", out.View.Class)
	assert.Empty(t, out.HTML)
}

func TestPanelHandler_OpenPanel_RequiresURL(t *testing.T) {
	f := newFixture(t)

	resp := f.api.Post("/panels", map[string]interface{}{"html": articleHTML})

	assert.Equal(t, 422, resp.Code)
}

func TestPanelHandler_OpenPanel_FetchesWhenHTMLMissing(t *testing.T) {
	f := newFixture(t)
	var fetched string
	f.fetcher.fetchFunc = func(ctx context.Context, url string) (*domain.Page, error) {
		fetched = url
		return &domain.Page{URL: url, Title: "Fetched title", HTML: articleHTML}, nil
	}

	resp := f.api.Post("/panels", map[string]interface{}{"url": "https://example.com/remote"})

	require.Equal(t, 201, resp.Code, resp.Body.String())
	out := decodePanel(t, resp)
	assert.Equal(t, "https://example.com/remote", fetched)
	assert.Equal(t, "Fetched title", out.Title)
}

func TestPanelHandler_OpenPanel_FetchDisabled(t *testing.T) {
	f := newFixture(t)
	f.flags.SetEnabled(featureflags.PageFetchEnabled, false)

	resp := f.api.Post("/panels", map[string]interface{}{"url": "https://example.com/remote"})

	assert.Equal(t, 400, resp.Code)
}

func TestPanelHandler_OpenPanel_FetchFailure(t *testing.T) {
	f := newFixture(t)
	f.fetcher.fetchFunc = func(ctx context.Context, url string) (*domain.Page, error) {
		return nil, &apperrors.UpstreamError{Service: "page fetch", Message: "Could not load page"}
	}

	resp := f.api.Post("/panels", map[string]interface{}{"url": "https://example.com/remote"})

	assert.Equal(t, 502, resp.Code)
	assert.Contains(t, resp.Body.String(), "Could not load page")
}

func TestPanelHandler_GetPanel_NotFound(t *testing.T) {
	f := newFixture(t)

	resp := f.api.Get("/panels/missing")

	assert.Equal(t, 404, resp.Code)
}

func TestPanelHandler_GetPanel_HTMLFormat(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)

	resp := f.api.Get("/panels/" + opened.ID + "?format=html")

	require.Equal(t, 200, resp.Code, resp.Body.String())
	out := decodePanel(t, resp)
	assert.Contains(t, out.HTML, `id="visual-summarizer-panel"`)
	assert.Contains(t, out.HTML, "Ready to Summarize")
}

func TestPanelHandler_Generate(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)

	resp := f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})

	require.Equal(t, 200, resp.Code, resp.Body.String())
	out := decodePanel(t, resp)
	assert.Equal(t, domain.PhaseResult, out.Phase)
	require.NotNil(t, out.Document)
	require.NotNil(t, out.Document.Takeaways)
	assert.Equal(t, "A short summary of the article.", out.Document.Takeaways.Summary)
	assert.Len(t, out.Document.Takeaways.KeyPoints, 2)
	assert.False(t, out.Busy)
}

func TestPanelHandler_Generate_UpstreamFailureIsErrorPhase(t *testing.T) {
	f := newFixture(t)
	f.summarizer.summarizeFunc = func(ctx context.Context, req domain.SummaryRequest) (string, error) {
		return "", &apperrors.UpstreamError{Service: "anthropic", Message: "Invalid API key"}
	}
	opened := f.openPanel(t)

	resp := f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})

	require.Equal(t, 200, resp.Code)
	out := decodePanel(t, resp)
	assert.Equal(t, domain.PhaseError, out.Phase)
	assert.Equal(t, "Invalid API key", out.Message)
}

func TestPanelHandler_Generate_BusyReturnsConflict(t *testing.T) {
	f := newFixture(t)
	started := make(chan struct{})
	release := make(chan struct{})
	f.summarizer.summarizeFunc = func(ctx context.Context, req domain.SummaryRequest) (string, error) {
		close(started)
		<-release
		return takeawaysReply, nil
	}
	opened := f.openPanel(t)

	done := make(chan int)
	go func() {
		resp := f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})
		done <- resp.Code
	}()
	<-started

	resp := f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})
	assert.Equal(t, 409, resp.Code)

	close(release)
	assert.Equal(t, 200, <-done)
}

func TestPanelHandler_SwitchMode(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)

	resp := f.api.Post("/panels/"+opened.ID+"/mode", map[string]interface{}{"mode": "visual"})

	require.Equal(t, 200, resp.Code, resp.Body.String())
	out := decodePanel(t, resp)
	assert.Equal(t, domain.ModeVisual, out.Mode)
	assert.Equal(t, domain.PhaseWelcome, out.Phase)
}

func TestPanelHandler_SwitchMode_InvalidMode(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)

	resp := f.api.Post("/panels/"+opened.ID+"/mode", map[string]interface{}{"mode": "graph"})

	assert.Equal(t, 422, resp.Code)
}

func TestPanelHandler_SwitchMode_GeneratesMissingDocument(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)
	f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})

	resp := f.api.Post("/panels/"+opened.ID+"/mode", map[string]interface{}{"mode": "visual"})

	require.Equal(t, 200, resp.Code)
	out := decodePanel(t, resp)
	assert.Equal(t, domain.PhaseResult, out.Phase)
	require.NotNil(t, out.Document)
	require.NotNil(t, out.Document.Visual)
	require.Len(t, out.Document.Visual.Mindmaps, 1)
	assert.Equal(t, "Topic", out.Document.Visual.Mindmaps[0].Text)
}

func TestPanelHandler_ToggleSave(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)
	f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})

	resp := f.api.Post("/panels/"+opened.ID+"/points/save", map[string]interface{}{"text": "The first important point"})

	require.Equal(t, 200, resp.Code, resp.Body.String())
	out := decodePanel(t, resp)
	require.NotNil(t, out.Document)
	assert.True(t, out.Document.Takeaways.KeyPoints[0].Saved)
	assert.False(t, out.Document.Takeaways.KeyPoints[1].Saved)

	list := f.api.Get("/saved-points")
	var saved responses.SavedPointsResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &saved))
	require.Equal(t, 1, saved.Total)
	assert.Equal(t, "The first important point", saved.Points[0].Text)
	assert.Equal(t, "Article", saved.Points[0].Title)

	resp = f.api.Post("/panels/"+opened.ID+"/points/save", map[string]interface{}{"text": "The first important point"})
	out = decodePanel(t, resp)
	assert.False(t, out.Document.Takeaways.KeyPoints[0].Saved)
}

func TestPanelHandler_ToggleExpand(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)
	f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})

	resp := f.api.Post("/panels/"+opened.ID+"/points/expand", map[string]interface{}{"text": "The second important point"})

	require.Equal(t, 200, resp.Code, resp.Body.String())
	out := decodePanel(t, resp)
	point := out.Document.Takeaways.KeyPoints[1]
	assert.True(t, point.Expanded)
	assert.Equal(t, "A longer explanation of The second important point", point.Detail)

	resp = f.api.Post("/panels/"+opened.ID+"/points/expand", map[string]interface{}{"text": "The second important point"})
	out = decodePanel(t, resp)
	assert.False(t, out.Document.Takeaways.KeyPoints[1].Expanded)
}

func TestPanelHandler_TogglesRejectUnknownPoint(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)
	f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})

	save := f.api.Post("/panels/"+opened.ID+"/points/save", map[string]interface{}{"text": "Some arbitrary text to store"})
	expand := f.api.Post("/panels/"+opened.ID+"/points/expand", map[string]interface{}{"text": "Some arbitrary text to explain"})

	assert.Equal(t, 400, save.Code, save.Body.String())
	assert.Equal(t, 400, expand.Code, expand.Body.String())

	list := f.api.Get("/saved-points")
	assert.JSONEq(t, `{"points":[],"total":0}`, list.Body.String())
}

func TestPanelHandler_ToggleExpand_ShortPoint(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)

	resp := f.api.Post("/panels/"+opened.ID+"/points/expand", map[string]interface{}{"text": "abc"})

	assert.Equal(t, 400, resp.Code)
}

func TestPanelHandler_SaveSummary(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)

	resp := f.api.Post("/panels/"+opened.ID+"/summary/save", map[string]interface{}{})
	assert.Equal(t, 400, resp.Code, "no summary to save in the welcome phase")

	f.api.Post("/panels/"+opened.ID+"/generate", map[string]interface{}{})
	resp = f.api.Post("/panels/"+opened.ID+"/summary/save", map[string]interface{}{})
	require.Equal(t, 200, resp.Code, resp.Body.String())
	var out responses.SaveSummaryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.True(t, out.Saved)

	list := f.api.Get("/recent-summaries")
	var recent responses.RecentSummariesResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &recent))
	require.Equal(t, 1, recent.Total)
	assert.Equal(t, "https://example.com/article", recent.Summaries[0].URL)
	assert.Equal(t, domain.ModeTakeaways, recent.Summaries[0].Mode)
}

func TestPanelHandler_ClosePanel(t *testing.T) {
	f := newFixture(t)
	opened := f.openPanel(t)

	resp := f.api.Delete("/panels/" + opened.ID)
	assert.Equal(t, 204, resp.Code)

	assert.Equal(t, 404, f.api.Get("/panels/"+opened.ID).Code)
	assert.Equal(t, 404, f.api.Delete("/panels/"+opened.ID).Code)
}
