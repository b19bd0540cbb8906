// ABOUTME: Response DTOs for the saved points, recent summaries and settings endpoints
// ABOUTME: Lists are always non-nil so clients get [] rather than null

package responses

import "visual-summarizer-api/core/domain"

// SavedPointsResponse lists saved points, newest first
type SavedPointsResponse struct {
	Points []domain.SavedPoint `json:"points" doc:"Saved points, newest first"`
	Total  int                 `json:"total" doc:"Number of saved points"`
}

// RecentSummariesResponse lists recent summaries, newest first
type RecentSummariesResponse struct {
	Summaries []domain.RecentSummary `json:"summaries" doc:"Recent summaries, newest first"`
	Total     int                    `json:"total" doc:"Number of recent summaries"`
}

// SettingsResponse is the current settings; the API key is never echoed
type SettingsResponse struct {
	APIKeyConfigured bool            `json:"apiKeyConfigured" doc:"Whether an API key is available"`
	DefaultMode      domain.Mode     `json:"defaultMode" doc:"Mode a new panel opens in"`
	Language         domain.Language `json:"language" doc:"Prompt language"`
}
