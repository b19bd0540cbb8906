// ABOUTME: Mappers from core panel state to API response DTOs
// ABOUTME: Renders the node tree and, on request, its HTML serialization

package mappers

import (
	"visual-summarizer-api/api/dto/responses"
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/panel"
	"visual-summarizer-api/core/render"
)

// ToPanelResponse converts a snapshot to its response DTO
func ToPanelResponse(snap panel.Snapshot, withHTML bool) (responses.PanelResponse, error) {
	view := render.RenderPanel(snap.View())

	resp := responses.PanelResponse{
		ID:       snap.ID,
		URL:      snap.URL,
		Title:    snap.Title,
		Mode:     snap.Mode,
		Phase:    snap.Phase,
		Message:  snap.Message,
		Busy:     snap.Busy,
		Document: snap.Document,
		Images:   snap.Images,
		View:     view,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}

	if withHTML {
		out, err := render.HTML(view)
		if err != nil {
			return responses.PanelResponse{}, err
		}
		resp.HTML = out
	}
	return resp, nil
}

// ToSavedPointsResponse wraps a saved points list
func ToSavedPointsResponse(points []domain.SavedPoint) responses.SavedPointsResponse {
	if points == nil {
		points = []domain.SavedPoint{}
	}
	return responses.SavedPointsResponse{Points: points, Total: len(points)}
}

// ToRecentSummariesResponse wraps a recent summaries list
func ToRecentSummariesResponse(summaries []domain.RecentSummary) responses.RecentSummariesResponse {
	if summaries == nil {
		summaries = []domain.RecentSummary{}
	}
	return responses.RecentSummariesResponse{Summaries: summaries, Total: len(summaries)}
}

// ToSettingsResponse converts settings to their response DTO
func ToSettingsResponse(s domain.Settings) responses.SettingsResponse {
	return responses.SettingsResponse{
		APIKeyConfigured: s.APIKeyConfigured,
		DefaultMode:      s.DefaultMode,
		Language:         s.Language,
	}
}
