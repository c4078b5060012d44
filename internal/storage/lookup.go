package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/bankimport"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// PeriodLookup answers lock gate queries from a period table.
type PeriodLookup struct {
	Periods sqlconfig.IPeriodTable
}

var _ period.StatusLookup = PeriodLookup{}

func (l PeriodLookup) FindStatus(ctx context.Context, userID uuid.UUID, r period.Range) (period.Status, bool, error) {
	row, err := l.Periods.Find(ctx, userID, r)
	if err != nil {
		return "", false, err
	}
	if row == nil {
		return "", false, nil
	}
	return row.Status, true, nil
}

// LoadFrequency returns the user's filing frequency, storing the default the
// first time a user is seen.
func LoadFrequency(ctx context.Context, settings sqlconfig.ISettingsTable, userID uuid.UUID) (period.Frequency, error) {
	row, err := settings.Find(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("finding settings: %w", err)
	}
	if row == nil {
		row, err = settings.InsertIfAbsent(ctx, userID, period.DefaultFrequency)
		if err != nil {
			return "", fmt.Errorf("creating default settings: %w", err)
		}
	}
	if row == nil {
		return period.DefaultFrequency, nil
	}
	return row.GSTFrequency, nil
}

// GetOrCreatePeriod returns the stored period for the range, creating an open
// one when none exists.
func GetOrCreatePeriod(ctx context.Context, periods sqlconfig.IPeriodTable, userID uuid.UUID, r period.Range) (*sqlconfig.Period, error) {
	row, err := periods.Find(ctx, userID, r)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return row, nil
	}
	return periods.InsertIfAbsent(ctx, userID, r)
}

// ImportStore runs a bank import against the tables of one Writer.
type ImportStore struct {
	PeriodLookup
	Transactions sqlconfig.ITransactionTable
	Settings     sqlconfig.ISettingsTable
}

var _ bankimport.Store = (*ImportStore)(nil)

func NewImportStore(w *Writer) *ImportStore {
	return &ImportStore{
		PeriodLookup: PeriodLookup{Periods: w.Periods},
		Transactions: w.Transactions,
		Settings:     w.Settings,
	}
}

func (s *ImportStore) LoadFrequency(ctx context.Context, userID uuid.UUID) (period.Frequency, error) {
	return LoadFrequency(ctx, s.Settings, userID)
}

func (s *ImportStore) ListExisting(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]bankimport.ExistingRow, error) {
	rows, err := s.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:    userID,
		From:      &from,
		To:        &to,
		Ascending: true,
	})
	if err != nil {
		return nil, err
	}

	existing := make([]bankimport.ExistingRow, 0, len(rows))
	for _, row := range rows {
		existing = append(existing, bankimport.ExistingRow{
			Date:        row.Date,
			Amount:      row.Amount,
			Description: row.Description,
		})
	}
	return existing, nil
}

func (s *ImportStore) InsertImported(ctx context.Context, userID uuid.UUID, rows []bankimport.StagedRow) (int, error) {
	values := make([]*sqlconfig.TransactionValues, 0, len(rows))
	for _, row := range rows {
		values = append(values, &sqlconfig.TransactionValues{
			UserID:       userID,
			Date:         row.Date,
			Category:     row.Category,
			Description:  row.Description,
			Amount:       row.Amount,
			GSTIncluded:  row.GSTIncluded,
			GSTClaimable: row.GSTClaimable,
			Type:         row.Type,
			Source:       sqlconfig.SourceBankImport,
		})
	}
	return s.Transactions.InsertMany(ctx, values)
}
