// ABOUTME: Durable records kept in the key-value store
// ABOUTME: Saved points and recent summaries are bounded, newest-first lists

package domain

import (
	"strings"
	"time"
)

const (
	// MaxSavedPoints caps the saved points list
	MaxSavedPoints = 50

	// MaxRecentSummaries caps the recent summaries list
	MaxRecentSummaries = 20
)

// apiKeyPrefix is the prefix every Anthropic API key carries
const apiKeyPrefix = "sk-ant-"

// ValidAPIKey reports whether key looks like an Anthropic API key
func ValidAPIKey(key string) bool {
	return len(key) > 20 && strings.HasPrefix(key, apiKeyPrefix)
}

// SavedPoint is a key point the user marked for retention
type SavedPoint struct {
	Text      string    `json:"text"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// RecentSummary records that a summary was saved for a page
type RecentSummary struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Mode      Mode      `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
}

// Settings is the subset of extension settings the panel reads.
// The API key itself is never exposed, only whether one is configured.
type Settings struct {
	APIKeyConfigured bool     `json:"apiKey"`
	DefaultMode      Mode     `json:"defaultMode,omitempty"`
	Language         Language `json:"language,omitempty"`
}
