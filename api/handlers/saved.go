// ABOUTME: Saved points and recent summaries handlers for the Huma API
// ABOUTME: Lists the durable bounded lists and removes saved points by index

package handlers

import (
	"context"
	"net/http"

	"visual-summarizer-api/api/dto/mappers"
	"visual-summarizer-api/api/dto/responses"
	"visual-summarizer-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// SavedHandler handles saved points and recent summaries requests
type SavedHandler struct {
	points interfaces.SavedPointStore
	recent interfaces.RecentSummaryStore
}

// NewSavedHandler creates a new saved points handler
func NewSavedHandler(points interfaces.SavedPointStore, recent interfaces.RecentSummaryStore) *SavedHandler {
	return &SavedHandler{
		points: points,
		recent: recent,
	}
}

// RegisterRoutes registers the saved points and recent summaries routes
func (h *SavedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listSavedPoints",
		Method:      http.MethodGet,
		Path:        "/saved-points",
		Summary:     "List saved points",
		Tags:        []string{"Saved"},
	}, h.ListSavedPoints)

	huma.Register(api, huma.Operation{
		OperationID: "deleteSavedPoint",
		Method:      http.MethodDelete,
		Path:        "/saved-points/{index}",
		Summary:     "Delete a saved point by its position",
		Tags:        []string{"Saved"},
	}, h.DeleteSavedPoint)

	huma.Register(api, huma.Operation{
		OperationID: "listRecentSummaries",
		Method:      http.MethodGet,
		Path:        "/recent-summaries",
		Summary:     "List recently saved summaries",
		Tags:        []string{"Saved"},
	}, h.ListRecentSummaries)
}

// SavedPointsOutput defines the output for saved point operations
type SavedPointsOutput struct {
	Body responses.SavedPointsResponse
}

// ListSavedPoints handles the GET /saved-points endpoint
func (h *SavedHandler) ListSavedPoints(ctx context.Context, input *struct{}) (*SavedPointsOutput, error) {
	points, err := h.points.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SavedPointsOutput{Body: mappers.ToSavedPointsResponse(points)}, nil
}

// DeleteSavedPointInput defines the input for the DeleteSavedPoint operation
type DeleteSavedPointInput struct {
	Index int `path:"index" minimum:"0" doc:"Position in the saved points list, 0 is the newest"`
}

// DeleteSavedPoint handles the DELETE /saved-points/{index} endpoint
func (h *SavedHandler) DeleteSavedPoint(ctx context.Context, input *DeleteSavedPointInput) (*SavedPointsOutput, error) {
	points, err := h.points.RemoveAt(ctx, input.Index)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SavedPointsOutput{Body: mappers.ToSavedPointsResponse(points)}, nil
}

// RecentSummariesOutput defines the output for the ListRecentSummaries operation
type RecentSummariesOutput struct {
	Body responses.RecentSummariesResponse
}

// ListRecentSummaries handles the GET /recent-summaries endpoint
func (h *SavedHandler) ListRecentSummaries(ctx context.Context, input *struct{}) (*RecentSummariesOutput, error) {
	summaries, err := h.recent.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &RecentSummariesOutput{Body: mappers.ToRecentSummariesResponse(summaries)}, nil
}
