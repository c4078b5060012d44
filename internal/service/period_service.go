package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// RecentPeriodsLimit caps ListRecent.
const RecentPeriodsLimit = 6

// Period is a stored GST filing period.
type Period struct {
	ID     uuid.UUID
	Range  period.Range
	Status period.Status
}

func periodFromRow(row *sqlconfig.Period) Period {
	return Period{ID: row.ID, Range: row.Range(), Status: row.Status}
}

// GSTReturn holds the figures and GST-eligible transactions for a range.
type GSTReturn struct {
	Range        period.Range
	Summary      gst.Summary
	Transactions []Transaction
}

type PeriodService struct {
	storage   *storage.Storage
	processor ActionProcessor
	now       func() time.Time
}

func NewPeriodService(store *storage.Storage, processor ActionProcessor) *PeriodService {
	return &PeriodService{storage: store, processor: processor, now: time.Now}
}

// CurrentPeriod returns the period containing date for the user's filing
// frequency, creating it as open on first access. A zero date means today.
// It returns nil when nobody is signed in.
func (s *PeriodService) CurrentPeriod(ctx context.Context, date time.Time) (*Period, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return nil, nil
	}
	if date.IsZero() {
		date = s.now()
	}

	frequency, err := storage.LoadFrequency(ctx, s.storage.Settings, userID)
	if err != nil {
		return nil, err
	}

	row, err := storage.GetOrCreatePeriod(ctx, s.storage.Periods, userID, period.PeriodRange(frequency, date))
	if err != nil {
		logrus.WithError(err).WithField("userID", userID).Error("PeriodService.CurrentPeriod")
		return nil, err
	}
	p := periodFromRow(row)
	return &p, nil
}

// ListRecent returns the latest periods first.
func (s *PeriodService) ListRecent(ctx context.Context) ([]Period, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return nil, nil
	}

	rows, err := s.storage.Periods.ListRecent(ctx, userID, RecentPeriodsLimit)
	if err != nil {
		logrus.WithError(err).WithField("userID", userID).Error("PeriodService.ListRecent")
		return nil, err
	}

	periods := make([]Period, len(rows))
	for i, row := range rows {
		periods[i] = periodFromRow(row)
	}
	return periods, nil
}

// SetStatus moves a period through open, ready_to_file and filed.
func (s *PeriodService) SetStatus(ctx context.Context, id uuid.UUID, status period.Status) (*Period, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.SetPeriodStatus{UserID: userID, PeriodID: id, Status: status}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	p := periodFromRow(action.Updated)
	return &p, nil
}

// GSTReturn builds the GST return figures for r. Only transactions in
// categories that participate in GST are listed.
func (s *PeriodService) GSTReturn(ctx context.Context, r period.Range) (*GSTReturn, error) {
	result := &GSTReturn{Range: r, Summary: gst.Summarize(nil)}

	userID, ok := currentUser(ctx)
	if !ok {
		return result, nil
	}

	transactions, err := NewTransactionService(s.storage, s.processor).listRange(ctx, userID, r, true)
	if err != nil {
		return nil, err
	}

	result.Summary = gst.Summarize(lines(transactions))
	for _, t := range transactions {
		if gst.IsCategoryIncludedInGST(t.Category) {
			result.Transactions = append(result.Transactions, t)
		}
	}
	return result, nil
}
