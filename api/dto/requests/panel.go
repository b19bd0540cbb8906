// ABOUTME: Request DTOs for panel endpoints
// ABOUTME: Huma validates these from struct tags before handlers run

package requests

import "visual-summarizer-api/core/domain"

// OpenPanelRequest is the page a panel is opened for
type OpenPanelRequest struct {
	// URL is the page address; required
	URL string `json:"url" minLength:"1" doc:"Page URL"`

	// Title is the page title shown back in saved points
	Title string `json:"title,omitempty" doc:"Page title"`

	// HTML is the page markup; when empty the page is fetched
	HTML string `json:"html,omitempty" doc:"Page HTML. When omitted the server fetches the URL if page fetching is enabled"`
}

// ModeRequest switches the panel tab
type ModeRequest struct {
	Mode domain.Mode `json:"mode" enum:"takeaways,visual" doc:"Panel mode"`
}

// PointRequest identifies a key point by its text
type PointRequest struct {
	Text string `json:"text" minLength:"1" doc:"Key point text"`
}
