package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/logging"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

type DashboardInput struct {
	From   string `query:"from" doc:"First day of the range, YYYY-MM-DD"`
	To     string `query:"to" doc:"Last day of the range, YYYY-MM-DD"`
	Preset string `query:"preset" enum:"this_month,last_2_months" doc:"Named range used when from and to are absent"`
}

// Summary holds the GST return figures as fixed two decimal strings.
type Summary struct {
	TotalSalesInclGST    string `json:"totalSalesInclGST"`
	TotalSpendingInclGST string `json:"totalSpendingInclGST"`
	GSTOnSales           string `json:"gstOnSales"`
	GSTToClaim           string `json:"gstToClaim"`
	NetGST               string `json:"netGST" doc:"Positive when GST is owed, negative when a refund is due"`
}

// ToSummary converts GST return figures for a response body.
func ToSummary(s gst.Summary) Summary {
	return Summary{
		TotalSalesInclGST:    s.TotalSalesInclGST.StringFixed(2),
		TotalSpendingInclGST: s.TotalSpendingInclGST.StringFixed(2),
		GSTOnSales:           s.GSTOnSales.StringFixed(2),
		GSTToClaim:           s.GSTToClaim.StringFixed(2),
		NetGST:               s.NetGST.StringFixed(2),
	}
}

type Spending struct {
	TotalSpending string `json:"totalSpending" doc:"Expenses excluding IRD settlements"`
	GSTAble       string `json:"gstAble" doc:"Expenses that included GST"`
	GSTToClaim    string `json:"gstToClaim"`
}

type DashboardResponseBody struct {
	From             string        `json:"from"`
	To               string        `json:"to"`
	Summary          Summary       `json:"summary"`
	Spending         Spending      `json:"spending"`
	TransactionCount int           `json:"transactionCount"`
	Recent           []Transaction `json:"recent"`
}

type DashboardOutput struct {
	Body DashboardResponseBody
}

type dashboardProvider interface {
	Dashboard(ctx context.Context, r *period.Range) (*service.Dashboard, error)
}

// DashboardHandler handles GET /v1/dashboard.
type DashboardHandler struct {
	TransactionService dashboardProvider
	now                func() time.Time
}

func NewDashboardHandler(svc dashboardProvider) *DashboardHandler {
	return &DashboardHandler{TransactionService: svc, now: time.Now}
}

func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Dashboard",
		Description: "GST figures, spending and recent transactions for a date range. Defaults to the current month.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	r, err := httputil.ParseOptionalRange(input.From, input.To)
	if err != nil {
		return nil, err
	}
	if r == nil && input.Preset != "" {
		presetRange, err := period.PresetRange(period.Preset(input.Preset), h.now())
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid preset", err)
		}
		r = &presetRange
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardMs")
	}
	dashboard, err := h.TransactionService.Dashboard(ctx, r)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to build dashboard")
	}

	return &DashboardOutput{Body: DashboardResponseBody{
		From:    dashboard.Range.Start.Format(period.DateLayout),
		To:      dashboard.Range.End.Format(period.DateLayout),
		Summary: ToSummary(dashboard.Summary),
		Spending: Spending{
			TotalSpending: dashboard.Spending.TotalSpending.StringFixed(2),
			GSTAble:       dashboard.Spending.GSTAble.StringFixed(2),
			GSTToClaim:    dashboard.Spending.GSTToClaim.StringFixed(2),
		},
		TransactionCount: dashboard.TransactionCount,
		Recent:           ToTransactions(dashboard.Recent),
	}}, nil
}
