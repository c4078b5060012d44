package export

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/logging"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

type ExportInput struct {
	From string `query:"from" required:"true" doc:"First day of the range, YYYY-MM-DD"`
	To   string `query:"to" required:"true" doc:"Last day of the range, YYYY-MM-DD"`
}

// CSVOutput is written as a file download.
type CSVOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type csvExporter interface {
	GSTReturnCSV(ctx context.Context, r period.Range) (*service.CSVFile, error)
	StatementCSV(ctx context.Context, r period.Range) (*service.CSVFile, error)
}

// Handler serves the GST return and statement CSV downloads.
type Handler struct {
	ExportService csvExporter
}

func NewHandler(svc csvExporter) *Handler {
	return &Handler{ExportService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-gst-return",
		Method:      http.MethodGet,
		Path:        "/v1/gst-return/export",
		Summary:     "Download GST return CSV",
		Tags:        []string{"Exports"},
	}, h.gstReturn)

	huma.Register(api, huma.Operation{
		OperationID: "export-statement",
		Method:      http.MethodGet,
		Path:        "/v1/statement/export",
		Summary:     "Download statement CSV",
		Tags:        []string{"Exports"},
	}, h.statement)
}

func (h *Handler) gstReturn(ctx context.Context, input *ExportInput) (*CSVOutput, error) {
	return h.export(ctx, input, h.ExportService.GSTReturnCSV)
}

func (h *Handler) statement(ctx context.Context, input *ExportInput) (*CSVOutput, error) {
	return h.export(ctx, input, h.ExportService.StatementCSV)
}

func (h *Handler) export(
	ctx context.Context,
	input *ExportInput,
	render func(context.Context, period.Range) (*service.CSVFile, error),
) (*CSVOutput, error) {
	r, err := httputil.ParseRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	file, err := render(ctx, r)
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to export")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("exportBytes", len(file.Content))
	}

	return &CSVOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="` + file.Filename + `"`,
		Body:               file.Content,
	}, nil
}
