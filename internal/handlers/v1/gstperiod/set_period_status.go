package gstperiod

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

type SetPeriodStatusBody struct {
	Status string `json:"status" required:"true" enum:"open,ready_to_file,filed" doc:"New filing status"`
}

type SetPeriodStatusInput struct {
	ID   string `path:"id" doc:"Period UUID"`
	Body SetPeriodStatusBody
}

type SetPeriodStatusOutput struct {
	Body Period
}

type periodStatusSetter interface {
	SetStatus(ctx context.Context, id uuid.UUID, status period.Status) (*service.Period, error)
}

// SetPeriodStatusHandler handles PUT /v1/periods/{id}/status.
type SetPeriodStatusHandler struct {
	PeriodService periodStatusSetter
}

func NewSetPeriodStatusHandler(svc periodStatusSetter) *SetPeriodStatusHandler {
	return &SetPeriodStatusHandler{PeriodService: svc}
}

func (h *SetPeriodStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-period-status",
		Method:      http.MethodPut,
		Path:        "/v1/periods/{id}/status",
		Summary:     "Change GST period status",
		Description: "Moves a period between open, ready_to_file and filed. Filing jumps from open are rejected with 409.",
		Tags:        []string{"GST Periods"},
	}, h.handle)
}

func (h *SetPeriodStatusHandler) handle(ctx context.Context, input *SetPeriodStatusInput) (*SetPeriodStatusOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	status, err := period.ParseStatus(input.Body.Status)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid status", err)
	}

	updated, err := h.PeriodService.SetStatus(ctx, id, status)
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to change GST period status")
	}
	return &SetPeriodStatusOutput{Body: toPeriod(*updated)}, nil
}
