// ABOUTME: Anthropic Messages API client implementing the Summarizer and Explainer
// ABOUTME: Every failure is reported as an UpstreamError with a short user-facing message

package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/core/interfaces"
	"visual-summarizer-api/pkg/utils/text"
)

const (
	// DefaultURL is the Messages API endpoint
	DefaultURL = "https://api.anthropic.com/v1/messages"

	// DefaultModel is the model used when none is configured
	DefaultModel = "claude-3-5-haiku-20241022"

	apiVersion = "2023-06-01"
	service    = "anthropic"

	summaryMaxTokens = 2048
	explainMaxTokens = 300

	maxSourceLength = 15000
	minSourceLength = 50
	minPointLength  = 5
	maxPointLength  = 500
	maxErrorBody    = 64 * 1024
)

// KeySource resolves the API key for each request
type KeySource interface {
	APIKey(ctx context.Context) (string, error)
}

// Config configures the client
type Config struct {
	URL   string
	Model string
}

// Client calls the Anthropic Messages API
type Client struct {
	http   interfaces.HTTPClient
	keys   KeySource
	logger interfaces.Logger
	url    string
	model  string
}

// NewClient creates a client; empty config values use the defaults
func NewClient(httpClient interfaces.HTTPClient, keys KeySource, logger interfaces.Logger, cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Client{
		http:   httpClient,
		keys:   keys,
		logger: logger,
		url:    cfg.URL,
		model:  cfg.Model,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Summarize returns the model reply for a takeaways or visual request
func (c *Client) Summarize(ctx context.Context, req domain.SummaryRequest) (string, error) {
	if !req.Task.Valid() {
		return "", &apperrors.UpstreamError{Service: service, Message: "Invalid mode"}
	}

	source := text.Truncate(req.SourceText, maxSourceLength)
	if text.Length(source) < minSourceLength {
		return "", &apperrors.UpstreamError{Service: service, Message: "Text too short"}
	}

	prompt, _ := SummaryPrompt(req.Task, req.Language, source)
	return c.complete(ctx, prompt, summaryMaxTokens, "API request failed", "Invalid API response")
}

// Explain returns a short explanation of one key point
func (c *Client) Explain(ctx context.Context, req domain.ExplainRequest) (string, error) {
	if text.Length(req.Point) < minPointLength {
		return "", &apperrors.UpstreamError{Service: service, Message: "Invalid point"}
	}

	prompt := ExplainPrompt(req.Language, text.Truncate(req.Point, maxPointLength))
	return c.complete(ctx, prompt, explainMaxTokens, "API request failed", "Invalid response")
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int, failedMsg, invalidMsg string) (string, error) {
	key, err := c.keys.APIKey(ctx)
	if err != nil {
		return "", &apperrors.UpstreamError{Service: service, Message: "Invalid API key", Err: err}
	}
	if !domain.ValidAPIKey(key) {
		return "", &apperrors.UpstreamError{Service: service, Message: "Invalid API key"}
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", &apperrors.UpstreamError{Service: service, Message: failedMsg, Err: err}
	}

	resp, err := c.http.Post(ctx, c.url, bytes.NewReader(body), map[string]string{
		"x-api-key":         key,
		"anthropic-version": apiVersion,
	})
	if err != nil {
		c.logFailure("Anthropic request failed", 0, err)
		return "", &apperrors.UpstreamError{Service: service, Message: failedMsg, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		msg := failedMsg
		var apiErr errorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body(), maxErrorBody))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		cause := &apperrors.ExternalAPIError{API: service, StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		c.logFailure("Anthropic returned an error status", resp.StatusCode(), cause)
		return "", &apperrors.UpstreamError{Service: service, Message: msg, Err: cause}
	}

	var out messagesResponse
	if err := json.NewDecoder(resp.Body()).Decode(&out); err != nil {
		return "", &apperrors.UpstreamError{Service: service, Message: invalidMsg, Err: err}
	}
	if len(out.Content) == 0 || out.Content[0].Text == "" {
		return "", &apperrors.UpstreamError{Service: service, Message: invalidMsg, Err: fmt.Errorf("empty content")}
	}
	return out.Content[0].Text, nil
}

func (c *Client) logFailure(msg string, status int, err error) {
	if c.logger == nil {
		return
	}
	fields := map[string]interface{}{
		"model": c.model,
		"error": err.Error(),
	}
	if status != 0 {
		fields["status"] = status
	}
	c.logger.Warn(msg, fields)
}
