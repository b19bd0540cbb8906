// ABOUTME: Settings handlers for the Huma API
// ABOUTME: Reads and partially updates default mode, language and the API key

package handlers

import (
	"context"
	"net/http"

	"visual-summarizer-api/api/dto/mappers"
	"visual-summarizer-api/api/dto/requests"
	"visual-summarizer-api/api/dto/responses"
	"visual-summarizer-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// SettingsHandler handles settings requests
type SettingsHandler struct {
	settings interfaces.SettingsProvider
	keys     interfaces.APIKeyStore
}

// NewSettingsHandler creates a new settings handler.
// keys may be nil, in which case API key updates are rejected.
func NewSettingsHandler(settings interfaces.SettingsProvider, keys interfaces.APIKeyStore) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		keys:     keys,
	}
}

// RegisterRoutes registers the settings routes
func (h *SettingsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSettings",
		Method:      http.MethodGet,
		Path:        "/settings",
		Summary:     "Get the current settings",
		Tags:        []string{"Settings"},
	}, h.GetSettings)

	huma.Register(api, huma.Operation{
		OperationID: "updateSettings",
		Method:      http.MethodPut,
		Path:        "/settings",
		Summary:     "Update settings",
		Description: "Omitted fields keep their stored value. The API key is write-only",
		Tags:        []string{"Settings"},
	}, h.UpdateSettings)
}

// SettingsOutput defines the output for settings operations
type SettingsOutput struct {
	Body responses.SettingsResponse
}

// GetSettings handles the GET /settings endpoint
func (h *SettingsHandler) GetSettings(ctx context.Context, input *struct{}) (*SettingsOutput, error) {
	s, err := h.settings.Settings(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SettingsOutput{Body: mappers.ToSettingsResponse(s)}, nil
}

// UpdateSettingsInput defines the input for the UpdateSettings operation
type UpdateSettingsInput struct {
	Body requests.UpdateSettingsRequest
}

// UpdateSettings handles the PUT /settings endpoint
func (h *SettingsHandler) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	if input.Body.Empty() {
		return nil, huma.Error400BadRequest("at least one setting is required")
	}

	if input.Body.APIKey != "" && h.keys == nil {
		return nil, huma.Error400BadRequest("API key cannot be changed on this server")
	}

	s, err := h.settings.Update(ctx, input.Body.DefaultMode, input.Body.Language)
	if err != nil {
		return nil, toHumaError(err)
	}

	if input.Body.APIKey != "" {
		if err := h.keys.SetAPIKey(ctx, input.Body.APIKey); err != nil {
			return nil, toHumaError(err)
		}
		s.APIKeyConfigured = true
	}
	return &SettingsOutput{Body: mappers.ToSettingsResponse(s)}, nil
}
