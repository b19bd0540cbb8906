// ABOUTME: Response DTOs for panel endpoints
// ABOUTME: Carries both the typed document and the display-ready node tree

package responses

import (
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/render"
)

// PanelResponse is the visible state of a panel
type PanelResponse struct {
	ID       string                 `json:"id" doc:"Panel identifier"`
	URL      string                 `json:"url" doc:"Page URL"`
	Title    string                 `json:"title,omitempty" doc:"Page title"`
	Mode     domain.Mode            `json:"mode" doc:"Active mode"`
	Phase    domain.Phase           `json:"phase" doc:"Lifecycle phase: welcome, loading, result or error"`
	Message  string                 `json:"message,omitempty" doc:"Error message in the error phase"`
	Busy     bool                   `json:"busy" doc:"Whether a generation is in flight"`
	Document *domain.ParsedDocument `json:"document,omitempty" doc:"Parsed document in the result phase"`
	Images   []string               `json:"images" doc:"Content images found on the page"`
	View     render.VisualNode      `json:"view" doc:"Rendered panel tree"`
	HTML     string                 `json:"html,omitempty" doc:"Rendered panel HTML when format=html"`
}

// SaveSummaryResponse reports whether the summary was recorded
type SaveSummaryResponse struct {
	Saved bool `json:"saved" doc:"False when the store could not be written"`
}
