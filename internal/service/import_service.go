package service

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/gst-server/internal/bankimport"
	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/metrics"
	"github.com/carson-networks/gst-server/internal/operator/actions"
)

// ImportPreview is a parsed bank export ready for review.
type ImportPreview struct {
	Candidates []bankimport.Candidate
	// Rejected counts rows dropped for a missing date or amount.
	Rejected int
}

type ImportService struct {
	processor ActionProcessor
}

func NewImportService(processor ActionProcessor) *ImportService {
	return &ImportService{processor: processor}
}

// Preview parses a bank CSV export and guesses a category for every row.
func (s *ImportService) Preview(ctx context.Context, csv io.Reader) (*ImportPreview, error) {
	parsed, err := bankimport.ReadCSV(csv)
	if err != nil {
		return nil, err
	}

	return &ImportPreview{
		Candidates: bankimport.BuildCandidates(parsed.Rows, gst.CategoryOptions()),
		Rejected:   parsed.Rejected,
	}, nil
}

// Import persists the selected candidates.
func (s *ImportService) Import(ctx context.Context, candidates []bankimport.Candidate) (bankimport.Result, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return bankimport.Result{}, err
	}

	action := &actions.ImportBankRows{UserID: userID, Candidates: candidates}
	if err := s.processor.Process(ctx, action); err != nil {
		logrus.WithError(err).WithField("userID", userID).Error("ImportService.Import")
		return bankimport.Result{}, err
	}

	metrics.RecordImport(action.Result.Imported, action.Result.Skipped, action.Result.LockedSkipped)
	return action.Result, nil
}
