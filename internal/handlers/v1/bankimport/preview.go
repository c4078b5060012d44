package bankimport

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/logging"
	"github.com/carson-networks/gst-server/internal/service"
)

const maxUploadBytes = 5 * 1024 * 1024

// PreviewInput carries the bank CSV export as the raw request body.
type PreviewInput struct {
	RawBody []byte `contentType:"text/csv"`
}

type PreviewResponseBody struct {
	Candidates []Candidate `json:"candidates"`
	Rejected   int         `json:"rejected" doc:"Rows dropped for a missing date or amount"`
}

type PreviewOutput struct {
	Body PreviewResponseBody
}

type importPreviewer interface {
	Preview(ctx context.Context, csv io.Reader) (*service.ImportPreview, error)
}

// PreviewHandler handles POST /v1/bank-import/preview.
type PreviewHandler struct {
	ImportService importPreviewer
}

func NewPreviewHandler(svc importPreviewer) *PreviewHandler {
	return &PreviewHandler{ImportService: svc}
}

func (h *PreviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "preview-bank-import",
		Method:       http.MethodPost,
		Path:         "/v1/bank-import/preview",
		Summary:      "Preview bank import",
		Description:  "Parses a bank CSV export and guesses type, category and GST flag for every row. Nothing is stored.",
		Tags:         []string{"Bank Import"},
		MaxBodyBytes: maxUploadBytes,
	}, h.handle)
}

func (h *PreviewHandler) handle(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if len(input.RawBody) == 0 {
		return nil, huma.NewError(http.StatusBadRequest, "empty upload")
	}

	preview, err := h.ImportService.Preview(ctx, bytes.NewReader(input.RawBody))
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to read bank export")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("candidateCount", len(preview.Candidates))
		logData.AddData("rejectedCount", preview.Rejected)
	}

	resp := PreviewResponseBody{
		Candidates: make([]Candidate, len(preview.Candidates)),
		Rejected:   preview.Rejected,
	}
	for i, c := range preview.Candidates {
		resp.Candidates[i] = toCandidate(c)
	}
	return &PreviewOutput{Body: resp}, nil
}
