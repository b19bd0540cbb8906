// ABOUTME: Request DTOs for the settings endpoint
// ABOUTME: Empty fields leave the stored value unchanged

package requests

import "visual-summarizer-api/core/domain"

// UpdateSettingsRequest is a partial settings update
type UpdateSettingsRequest struct {
	DefaultMode domain.Mode     `json:"defaultMode,omitempty" doc:"Mode a new panel opens in (takeaways or visual)"`
	Language    domain.Language `json:"language,omitempty" doc:"Prompt language (en or fr)"`
	APIKey      string          `json:"apiKey,omitempty" doc:"Anthropic API key; write-only"`
}

// Empty reports whether the request changes nothing
func (r UpdateSettingsRequest) Empty() bool {
	return r.DefaultMode == "" && r.Language == "" && r.APIKey == ""
}
