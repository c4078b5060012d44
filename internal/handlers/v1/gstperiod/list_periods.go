package gstperiod

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/logging"
	"github.com/carson-networks/gst-server/internal/service"
)

type ListPeriodsInput struct{}

type ListPeriodsResponseBody struct {
	Periods []Period `json:"periods" doc:"Most recent periods first"`
}

type ListPeriodsOutput struct {
	Body ListPeriodsResponseBody
}

type CurrentPeriodInput struct {
	Date string `query:"date" doc:"Any day inside the period, YYYY-MM-DD. Defaults to today."`
}

type CurrentPeriodResponseBody struct {
	Period *Period `json:"period,omitempty" doc:"Absent when not signed in"`
}

type CurrentPeriodOutput struct {
	Body CurrentPeriodResponseBody
}

type periodReader interface {
	ListRecent(ctx context.Context) ([]service.Period, error)
	CurrentPeriod(ctx context.Context, date time.Time) (*service.Period, error)
}

// ListPeriodsHandler handles GET /v1/periods and GET /v1/periods/current.
type ListPeriodsHandler struct {
	PeriodService periodReader
}

func NewListPeriodsHandler(svc periodReader) *ListPeriodsHandler {
	return &ListPeriodsHandler{PeriodService: svc}
}

func (h *ListPeriodsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-periods",
		Method:      http.MethodGet,
		Path:        "/v1/periods",
		Summary:     "List GST periods",
		Tags:        []string{"GST Periods"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-current-period",
		Method:      http.MethodGet,
		Path:        "/v1/periods/current",
		Summary:     "Current GST period",
		Description: "Returns the period containing date under the user's filing frequency, creating it as open on first access.",
		Tags:        []string{"GST Periods"},
	}, h.current)
}

func (h *ListPeriodsHandler) list(ctx context.Context, _ *ListPeriodsInput) (*ListPeriodsOutput, error) {
	periods, err := h.PeriodService.ListRecent(ctx)
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to list GST periods")
	}

	resp := ListPeriodsResponseBody{Periods: make([]Period, len(periods))}
	for i, p := range periods {
		resp.Periods[i] = toPeriod(p)
	}
	return &ListPeriodsOutput{Body: resp}, nil
}

func (h *ListPeriodsHandler) current(ctx context.Context, input *CurrentPeriodInput) (*CurrentPeriodOutput, error) {
	var date time.Time
	if input.Date != "" {
		var err error
		date, err = httputil.ParseDate("date", input.Date)
		if err != nil {
			return nil, err
		}
	}

	p, err := h.PeriodService.CurrentPeriod(ctx, date)
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to load GST period")
	}

	out := &CurrentPeriodOutput{}
	if p != nil {
		converted := toPeriod(*p)
		out.Body.Period = &converted
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("periodStatus", converted.Status)
		}
	}
	return out, nil
}
