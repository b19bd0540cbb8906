package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/infrastructure/http/standard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "sk-ant-REDACTED"

var pageText = strings.Repeat("Readable page text for the model. ", 4)

type staticKey struct {
	key string
	err error
}

func (s staticKey) APIKey(ctx context.Context) (string, error) {
	return s.key, s.err
}

type capturedRequest struct {
	headers http.Header
	body    messagesRequest
}

func newTestServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.headers = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&captured.body); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newTestClient(url string, keys KeySource) *Client {
	return NewClient(standard.NewClient(5*time.Second), keys, nil, Config{URL: url})
}

func TestSummarize_Success(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{"content":[{"type":"text","text":"## SUMMARY\nHi"}]}`)
	client := newTestClient(server.URL, staticKey{key: testKey})

	reply, err := client.Summarize(context.Background(), domain.SummaryRequest{
		Task:       domain.ModeTakeaways,
		SourceText: pageText,
		Language:   domain.LanguageEnglish,
	})
	require.NoError(t, err)
	assert.Equal(t, "## SUMMARY\nHi", reply)

	assert.Equal(t, testKey, captured.headers.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", captured.headers.Get("anthropic-version"))
	assert.Equal(t, DefaultModel, captured.body.Model)
	assert.Equal(t, summaryMaxTokens, captured.body.MaxTokens)
	require.Len(t, captured.body.Messages, 1)
	assert.True(t, strings.HasPrefix(captured.body.Messages[0].Content, "Summarize the following text"))
	assert.True(t, strings.HasSuffix(captured.body.Messages[0].Content, pageText))
}

func TestSummarize_FrenchVisualPrompt(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{"content":[{"type":"text","text":"ok"}]}`)
	client := newTestClient(server.URL, staticKey{key: testKey})

	_, err := client.Summarize(context.Background(), domain.SummaryRequest{
		Task:       domain.ModeVisual,
		SourceText: pageText,
		Language:   domain.LanguageFrench,
	})
	require.NoError(t, err)
	assert.Contains(t, captured.body.Messages[0].Content, "```mindmap\nSujet Principal")
}

func TestSummarize_TruncatesSource(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{"content":[{"type":"text","text":"ok"}]}`)
	client := newTestClient(server.URL, staticKey{key: testKey})

	_, err := client.Summarize(context.Background(), domain.SummaryRequest{
		Task:       domain.ModeTakeaways,
		SourceText: strings.Repeat("a", maxSourceLength+500),
	})
	require.NoError(t, err)

	prompt, _ := SummaryPrompt(domain.ModeTakeaways, domain.LanguageEnglish, "")
	assert.Equal(t, len(prompt)+maxSourceLength, len(captured.body.Messages[0].Content))
}

func TestSummarize_ErrorStatusUsesAPIMessage(t *testing.T) {
	server, _ := newTestServer(t, http.StatusBadRequest, `{"type":"error","error":{"type":"invalid_request_error","message":"prompt is too long"}}`)
	client := newTestClient(server.URL, staticKey{key: testKey})

	_, err := client.Summarize(context.Background(), domain.SummaryRequest{Task: domain.ModeTakeaways, SourceText: pageText})

	require.Error(t, err)
	assert.Equal(t, "prompt is too long", apperrors.UserMessage(err))
	assert.True(t, apperrors.IsExternalAPI(err))
}

func TestSummarize_ErrorStatusWithoutBody(t *testing.T) {
	server, _ := newTestServer(t, http.StatusUnauthorized, ``)
	client := newTestClient(server.URL, staticKey{key: testKey})

	_, err := client.Summarize(context.Background(), domain.SummaryRequest{Task: domain.ModeTakeaways, SourceText: pageText})

	assert.Equal(t, "API request failed", apperrors.UserMessage(err))
}

func TestSummarize_InvalidResponse(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"content":[]}`)
	client := newTestClient(server.URL, staticKey{key: testKey})

	_, err := client.Summarize(context.Background(), domain.SummaryRequest{Task: domain.ModeVisual, SourceText: pageText})

	assert.True(t, apperrors.IsUpstream(err))
	assert.Equal(t, "Invalid API response", apperrors.UserMessage(err))
}

func TestSummarize_RejectsBeforeCalling(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{}`)

	tests := []struct {
		name    string
		keys    KeySource
		req     domain.SummaryRequest
		message string
	}{
		{"malformed key", staticKey{key: "sk-wrong"}, domain.SummaryRequest{Task: domain.ModeTakeaways, SourceText: pageText}, "Invalid API key"},
		{"key lookup fails", staticKey{err: errors.New("store down")}, domain.SummaryRequest{Task: domain.ModeTakeaways, SourceText: pageText}, "Invalid API key"},
		{"unknown mode", staticKey{key: testKey}, domain.SummaryRequest{Task: "chart", SourceText: pageText}, "Invalid mode"},
		{"short text", staticKey{key: testKey}, domain.SummaryRequest{Task: domain.ModeTakeaways, SourceText: "short"}, "Text too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestClient(server.URL, tt.keys).Summarize(context.Background(), tt.req)
			assert.True(t, apperrors.IsUpstream(err))
			assert.Equal(t, tt.message, apperrors.UserMessage(err))
		})
	}
	assert.Empty(t, captured.body.Model, "no request should reach the API")
}

func TestExplain(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{"content":[{"type":"text","text":"Because."}]}`)
	client := newTestClient(server.URL, staticKey{key: testKey})

	reply, err := client.Explain(context.Background(), domain.ExplainRequest{Point: "Costs fell 40%", Language: domain.LanguageFrench})
	require.NoError(t, err)
	assert.Equal(t, "Because.", reply)
	assert.Equal(t, explainMaxTokens, captured.body.MaxTokens)
	assert.Equal(t, `Explique ce point en 2-3 phrases avec un exemple concret: "Costs fell 40%"`, captured.body.Messages[0].Content)
}

func TestExplain_InvalidPoint(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0", staticKey{key: testKey})

	_, err := client.Explain(context.Background(), domain.ExplainRequest{Point: "abc"})
	assert.Equal(t, "Invalid point", apperrors.UserMessage(err))
}

func TestExplainPrompt_DefaultsToEnglish(t *testing.T) {
	assert.Equal(t,
		`Explain this point in 2-3 sentences with a concrete example: "x"`,
		ExplainPrompt(domain.Language(""), "x"))
}
