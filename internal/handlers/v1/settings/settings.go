package settings

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

// Settings is the API model for user settings.
type Settings struct {
	GSTFrequency string `json:"gstFrequency" required:"true" enum:"monthly,two-monthly,six-monthly" doc:"GST filing frequency"`
}

type GetSettingsInput struct{}

type SettingsOutput struct {
	Body Settings
}

type SaveSettingsInput struct {
	Body Settings
}

type settingsStore interface {
	Get(ctx context.Context) (*service.Settings, error)
	SetFrequency(ctx context.Context, frequency period.Frequency) (*service.Settings, error)
}

// Handler handles GET and PUT /v1/settings.
type Handler struct {
	SettingsService settingsStore
}

func NewHandler(svc settingsStore) *Handler {
	return &Handler{SettingsService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Tags:        []string{"Settings"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "save-settings",
		Method:      http.MethodPut,
		Path:        "/v1/settings",
		Summary:     "Save settings",
		Description: "Changing the frequency only affects how periods are computed from now on. Stored periods keep their dates.",
		Tags:        []string{"Settings"},
	}, h.save)
}

func (h *Handler) get(ctx context.Context, _ *GetSettingsInput) (*SettingsOutput, error) {
	settings, err := h.SettingsService.Get(ctx)
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to load settings")
	}
	return &SettingsOutput{Body: Settings{GSTFrequency: string(settings.GSTFrequency)}}, nil
}

func (h *Handler) save(ctx context.Context, input *SaveSettingsInput) (*SettingsOutput, error) {
	frequency, err := period.ParseFrequency(input.Body.GSTFrequency)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid gstFrequency", err)
	}

	settings, err := h.SettingsService.SetFrequency(ctx, frequency)
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to save settings")
	}
	return &SettingsOutput{Body: Settings{GSTFrequency: string(settings.GSTFrequency)}}, nil
}
