// ABOUTME: PageFetcher that downloads a page with colly when the shell only sends a URL
// ABOUTME: Captures the raw HTML and reads the title through the goquery selection colly exposes

package colly

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/core/interfaces"

	"github.com/gocolly/colly"
)

const (
	fetchUserAgent = "Mozilla/5.0 (compatible; VisualSummarizer/1.0)"
	maxBodySize    = 5 * 1024 * 1024
	defaultTimeout = 15 * time.Second
)

// Fetcher implements PageFetcher using colly
type Fetcher struct {
	logger  interfaces.Logger
	timeout time.Duration
}

// NewFetcher creates a fetcher; timeout <= 0 uses a 15 second default
func NewFetcher(logger interfaces.Logger, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{logger: logger, timeout: timeout}
}

// Fetch downloads targetURL and returns its HTML and title
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*domain.Page, error) {
	if !strings.HasPrefix(targetURL, "http://") && !strings.HasPrefix(targetURL, "https://") {
		return nil, &apperrors.ValidationError{Field: "url", Message: "must be an http or https URL"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	c := colly.NewCollector(
		colly.UserAgent(fetchUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(timeout)

	page := &domain.Page{URL: targetURL}
	var status int
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		page.URL = r.Request.URL.String()
		page.HTML = string(r.Body)
	})

	c.OnHTML("html", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.DOM.Find("head title").First().Text())
		if title == "" {
			title, _ = e.DOM.Find(`meta[property="og:title"]`).Attr("content")
		}
		page.Title = strings.TrimSpace(title)
	})

	c.OnError(func(r *colly.Response, err error) {
		status = r.StatusCode
		fetchErr = err
	})

	if err := c.Visit(targetURL); err != nil && fetchErr == nil {
		fetchErr = err
	}

	if fetchErr != nil {
		if f.logger != nil {
			f.logger.Debug("Failed to fetch page", map[string]interface{}{
				"url":    targetURL,
				"status": status,
				"error":  fetchErr.Error(),
			})
		}
		msg := "Could not load page"
		if status != 0 {
			msg = fmt.Sprintf("Could not load page: %d", status)
		}
		return nil, &apperrors.UpstreamError{Service: "page fetch", Message: msg, Err: fetchErr}
	}

	if page.HTML == "" {
		return nil, &apperrors.UpstreamError{Service: "page fetch", Message: "Empty page", Err: errors.New("no body")}
	}
	return page, nil
}
