// ABOUTME: Panel handlers for the Huma API
// ABOUTME: Opens panels and forwards tab, generate, save and expand clicks to the state machine

package handlers

import (
	"context"
	"net/http"

	"visual-summarizer-api/api/dto/mappers"
	"visual-summarizer-api/api/dto/requests"
	"visual-summarizer-api/api/dto/responses"
	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/interfaces"
	"visual-summarizer-api/core/panel"
	"visual-summarizer-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// PanelManager interface defines the methods needed from the panel registry
type PanelManager interface {
	Open(ctx context.Context, page domain.Page) (*panel.Panel, error)
	Get(id string) (*panel.Panel, error)
	Close(id string) error
}

// PanelHandler handles panel-related HTTP requests
type PanelHandler struct {
	manager PanelManager
	fetcher interfaces.PageFetcher
	flags   featureflags.Manager
}

// NewPanelHandler creates a new panel handler.
// fetcher may be nil, in which case callers must always send the page HTML.
func NewPanelHandler(manager PanelManager, fetcher interfaces.PageFetcher, flags featureflags.Manager) *PanelHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &PanelHandler{
		manager: manager,
		fetcher: fetcher,
		flags:   flags,
	}
}

// RegisterRoutes registers all panel-related routes
func (h *PanelHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "openPanel",
		Method:        http.MethodPost,
		Path:          "/panels",
		Summary:       "Open a panel for a page",
		Description:   "Extracts the page text and images and opens a panel in the welcome phase",
		Tags:          []string{"Panels"},
		DefaultStatus: http.StatusCreated,
	}, h.OpenPanel)

	huma.Register(api, huma.Operation{
		OperationID: "getPanel",
		Method:      http.MethodGet,
		Path:        "/panels/{id}",
		Summary:     "Get the current panel view",
		Tags:        []string{"Panels"},
	}, h.GetPanel)

	huma.Register(api, huma.Operation{
		OperationID: "generateSummary",
		Method:      http.MethodPost,
		Path:        "/panels/{id}/generate",
		Summary:     "Generate or regenerate the summary for the active mode",
		Description: "Fails with 409 while another generation is in flight",
		Tags:        []string{"Panels"},
	}, h.Generate)

	huma.Register(api, huma.Operation{
		OperationID: "switchMode",
		Method:      http.MethodPost,
		Path:        "/panels/{id}/mode",
		Summary:     "Switch the panel tab",
		Description: "Shows the cached document of the mode when one exists, otherwise generates it",
		Tags:        []string{"Panels"},
	}, h.SwitchMode)

	huma.Register(api, huma.Operation{
		OperationID: "toggleSavePoint",
		Method:      http.MethodPost,
		Path:        "/panels/{id}/points/save",
		Summary:     "Save or unsave a key point",
		Tags:        []string{"Panels"},
	}, h.ToggleSave)

	huma.Register(api, huma.Operation{
		OperationID: "toggleExpandPoint",
		Method:      http.MethodPost,
		Path:        "/panels/{id}/points/expand",
		Summary:     "Expand or collapse the detail of a key point",
		Tags:        []string{"Panels"},
	}, h.ToggleExpand)

	huma.Register(api, huma.Operation{
		OperationID: "saveSummary",
		Method:      http.MethodPost,
		Path:        "/panels/{id}/summary/save",
		Summary:     "Record the current summary in the recent summaries list",
		Tags:        []string{"Panels"},
	}, h.SaveSummary)

	huma.Register(api, huma.Operation{
		OperationID:   "closePanel",
		Method:        http.MethodDelete,
		Path:          "/panels/{id}",
		Summary:       "Close a panel and discard its state",
		Tags:          []string{"Panels"},
		DefaultStatus: http.StatusNoContent,
	}, h.ClosePanel)
}

// PanelIDInput identifies a panel
type PanelIDInput struct {
	ID string `path:"id" doc:"Panel identifier"`
}

// PanelOutput defines the output of every panel transition
type PanelOutput struct {
	Body responses.PanelResponse
}

// OpenPanelInput defines the input for the OpenPanel operation
type OpenPanelInput struct {
	Body requests.OpenPanelRequest
}

// OpenPanel handles the POST /panels endpoint
func (h *PanelHandler) OpenPanel(ctx context.Context, input *OpenPanelInput) (*PanelOutput, error) {
	page := domain.Page{
		URL:   input.Body.URL,
		Title: input.Body.Title,
		HTML:  input.Body.HTML,
	}

	if page.HTML == "" {
		if h.fetcher == nil || !h.flags.IsEnabled(ctx, featureflags.PageFetchEnabled) {
			return nil, huma.Error400BadRequest("html is required when page fetching is disabled")
		}
		fetched, err := h.fetcher.Fetch(ctx, page.URL)
		if err != nil {
			return nil, toHumaError(err)
		}
		page.HTML = fetched.HTML
		if page.Title == "" {
			page.Title = fetched.Title
		}
	}

	p, err := h.manager.Open(ctx, page)
	if err != nil {
		return nil, toHumaError(err)
	}
	return panelOutput(p.Snapshot(), false)
}

// GetPanelInput defines the input for the GetPanel operation
type GetPanelInput struct {
	ID     string `path:"id" doc:"Panel identifier"`
	Format string `query:"format" enum:"json,html" default:"json" doc:"Set to html to include the rendered HTML"`
}

// GetPanel handles the GET /panels/{id} endpoint
func (h *PanelHandler) GetPanel(ctx context.Context, input *GetPanelInput) (*PanelOutput, error) {
	p, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return panelOutput(p.Snapshot(), input.Format == "html")
}

// Generate handles the POST /panels/{id}/generate endpoint
func (h *PanelHandler) Generate(ctx context.Context, input *PanelIDInput) (*PanelOutput, error) {
	p, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	snap, err := p.Generate(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return panelOutput(snap, false)
}

// SwitchModeInput defines the input for the SwitchMode operation
type SwitchModeInput struct {
	ID   string `path:"id" doc:"Panel identifier"`
	Body requests.ModeRequest
}

// SwitchMode handles the POST /panels/{id}/mode endpoint
func (h *PanelHandler) SwitchMode(ctx context.Context, input *SwitchModeInput) (*PanelOutput, error) {
	p, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	snap, err := p.SwitchMode(ctx, input.Body.Mode)
	if err != nil {
		return nil, toHumaError(err)
	}
	return panelOutput(snap, false)
}

// PointInput defines the input for the point toggles
type PointInput struct {
	ID   string `path:"id" doc:"Panel identifier"`
	Body requests.PointRequest
}

// ToggleSave handles the POST /panels/{id}/points/save endpoint
func (h *PanelHandler) ToggleSave(ctx context.Context, input *PointInput) (*PanelOutput, error) {
	p, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	snap, err := p.ToggleSave(ctx, input.Body.Text)
	if err != nil {
		return nil, toHumaError(err)
	}
	return panelOutput(snap, false)
}

// ToggleExpand handles the POST /panels/{id}/points/expand endpoint
func (h *PanelHandler) ToggleExpand(ctx context.Context, input *PointInput) (*PanelOutput, error) {
	p, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	snap, err := p.ToggleExpand(ctx, input.Body.Text)
	if err != nil {
		return nil, toHumaError(err)
	}
	return panelOutput(snap, false)
}

// SaveSummaryOutput defines the output for the SaveSummary operation
type SaveSummaryOutput struct {
	Body responses.SaveSummaryResponse
}

// SaveSummary handles the POST /panels/{id}/summary/save endpoint
func (h *PanelHandler) SaveSummary(ctx context.Context, input *PanelIDInput) (*SaveSummaryOutput, error) {
	p, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	saved, err := p.SaveSummary(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SaveSummaryOutput{
		Body: responses.SaveSummaryResponse{Saved: saved},
	}, nil
}

// ClosePanel handles the DELETE /panels/{id} endpoint
func (h *PanelHandler) ClosePanel(ctx context.Context, input *PanelIDInput) (*struct{}, error) {
	if err := h.manager.Close(input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

func panelOutput(snap panel.Snapshot, withHTML bool) (*PanelOutput, error) {
	resp, err := mappers.ToPanelResponse(snap, withHTML)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PanelOutput{Body: resp}, nil
}
