package gstperiod

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/gst-server/internal/logging"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

type GSTReturnInput struct {
	From string `query:"from" required:"true" doc:"First day of the range, YYYY-MM-DD"`
	To   string `query:"to" required:"true" doc:"Last day of the range, YYYY-MM-DD"`
}

type GSTReturnResponseBody struct {
	From         string                    `json:"from"`
	To           string                    `json:"to"`
	Summary      transaction.Summary       `json:"summary"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Transactions in GST categories, oldest first"`
}

type GSTReturnOutput struct {
	Body GSTReturnResponseBody
}

type gstReturnBuilder interface {
	GSTReturn(ctx context.Context, r period.Range) (*service.GSTReturn, error)
}

// GSTReturnHandler handles GET /v1/gst-return.
type GSTReturnHandler struct {
	PeriodService gstReturnBuilder
}

func NewGSTReturnHandler(svc gstReturnBuilder) *GSTReturnHandler {
	return &GSTReturnHandler{PeriodService: svc}
}

func (h *GSTReturnHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-gst-return",
		Method:      http.MethodGet,
		Path:        "/v1/gst-return",
		Summary:     "GST return figures",
		Tags:        []string{"GST Periods"},
	}, h.handle)
}

func (h *GSTReturnHandler) handle(ctx context.Context, input *GSTReturnInput) (*GSTReturnOutput, error) {
	r, err := httputil.ParseRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("gstReturnMs")
	}
	ret, err := h.PeriodService.GSTReturn(ctx, r)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to build GST return")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(ret.Transactions))
	}

	return &GSTReturnOutput{Body: GSTReturnResponseBody{
		From:         ret.Range.Start.Format(period.DateLayout),
		To:           ret.Range.End.Format(period.DateLayout),
		Summary:      transaction.ToSummary(ret.Summary),
		Transactions: transaction.ToTransactions(ret.Transactions),
	}}, nil
}
