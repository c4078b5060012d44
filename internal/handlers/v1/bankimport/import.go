package bankimport

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/bankimport"
	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/logging"
)

type ImportBody struct {
	Candidates []Candidate `json:"candidates" required:"true" doc:"Reviewed candidates from the preview"`
}

type ImportInput struct {
	Body ImportBody
}

type ImportResponseBody struct {
	Imported      int `json:"imported"`
	Skipped       int `json:"skipped" doc:"Duplicates plus deselected or invalid rows"`
	LockedSkipped int `json:"lockedSkipped" doc:"Rows dated in filed GST periods"`
}

type ImportOutput struct {
	Body ImportResponseBody
}

type candidateImporter interface {
	Import(ctx context.Context, candidates []bankimport.Candidate) (bankimport.Result, error)
}

// ImportHandler handles POST /v1/bank-import.
type ImportHandler struct {
	ImportService candidateImporter
}

func NewImportHandler(svc candidateImporter) *ImportHandler {
	return &ImportHandler{ImportService: svc}
}

func (h *ImportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "import-bank-rows",
		Method:       http.MethodPost,
		Path:         "/v1/bank-import",
		Summary:      "Import bank rows",
		Description:  "Stores the selected candidates, skipping duplicates and rows dated in filed GST periods.",
		Tags:         []string{"Bank Import"},
		MaxBodyBytes: maxUploadBytes,
	}, h.handle)
}

func (h *ImportHandler) handle(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	candidates := make([]bankimport.Candidate, len(input.Body.Candidates))
	for i, c := range input.Body.Candidates {
		candidates[i] = fromCandidate(c)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("importMs")
	}
	result, err := h.ImportService.Import(ctx, candidates)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httputil.ServiceError(err, "failed to import bank rows")
	}

	if logData != nil {
		logData.AddData("imported", result.Imported)
		logData.AddData("skipped", result.Skipped)
		logData.AddData("lockedSkipped", result.LockedSkipped)
	}

	return &ImportOutput{Body: ImportResponseBody{
		Imported:      result.Imported,
		Skipped:       result.Skipped,
		LockedSkipped: result.LockedSkipped,
	}}, nil
}
