package bankimport

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
)

// ExistingRow is a persisted transaction used to seed the dedupe set.
type ExistingRow struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// StagedRow is an import candidate accepted for persistence.
type StagedRow struct {
	Date         time.Time
	Amount       decimal.Decimal
	GSTIncluded  bool
	GSTClaimable decimal.Decimal
	Type         gst.TransactionType
	Category     string
	Description  string
}

// Store is what the importer needs from persistence.
type Store interface {
	period.StatusLookup
	LoadFrequency(ctx context.Context, userID uuid.UUID) (period.Frequency, error)
	ListExisting(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ExistingRow, error)
	InsertImported(ctx context.Context, userID uuid.UUID, rows []StagedRow) (int, error)
}

// Result reports what happened to each candidate.
type Result struct {
	Imported int
	// Skipped counts duplicates plus rows that were deselected or invalid.
	Skipped       int
	LockedSkipped int
}

// Importer filters a batch of candidates and persists the survivors in one
// insert.
type Importer struct {
	store Store
}

func NewImporter(store Store) *Importer {
	return &Importer{store: store}
}

type validCandidate struct {
	Candidate
	day time.Time
}

// Import drops deselected and invalid rows, skips rows dated in filed
// periods and rows already present, then inserts the rest. A batch with no
// valid rows returns without touching the store.
func (i *Importer) Import(ctx context.Context, userID uuid.UUID, candidates []Candidate) (Result, error) {
	valid := make([]validCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.Import || !candidate.Amount.Valid || candidate.Date == "" {
			continue
		}
		normalized, ok := NormalizeDate(candidate.Date)
		if !ok {
			continue
		}
		day, err := period.ParseDay(normalized)
		if err != nil {
			continue
		}
		candidate.Date = normalized
		valid = append(valid, validCandidate{Candidate: candidate, day: day})
	}

	result := Result{Skipped: len(candidates) - len(valid)}
	if len(valid) == 0 {
		return result, nil
	}

	frequency, err := i.store.LoadFrequency(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	statuses := period.NewStatusCache(i.store, userID, frequency)

	minDate, maxDate := valid[0].day, valid[0].day
	for _, row := range valid[1:] {
		if row.day.Before(minDate) {
			minDate = row.day
		}
		if row.day.After(maxDate) {
			maxDate = row.day
		}
	}

	existing, err := i.store.ListExisting(ctx, userID, minDate, maxDate)
	if err != nil {
		return Result{}, err
	}
	seen := make(map[string]struct{}, len(existing)+len(valid))
	for _, row := range existing {
		seen[BuildDedupeKey(DedupeInput{
			Date:        row.Date.Format(period.DateLayout),
			Amount:      row.Amount,
			Description: row.Description,
		})] = struct{}{}
	}

	var staged []StagedRow
	for _, row := range valid {
		status, err := statuses.StatusForDate(ctx, row.day)
		if err != nil {
			return Result{}, err
		}
		if period.CheckStatusAllowsWrite(status) != nil {
			result.LockedSkipped++
			continue
		}

		amount := gst.RoundMoney(row.Amount.Decimal.Abs())
		description := StoredDescription(row.Counterparty, row.Description)
		key := BuildDedupeKey(DedupeInput{Date: row.Date, Amount: amount, Description: description})
		if _, ok := seen[key]; ok {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}

		category := catalogCategory(row.CategoryID)
		gstIncluded := gst.DefaultGSTIncluded(category)
		if row.GSTIncluded != nil {
			gstIncluded = *row.GSTIncluded
		}

		transactionType := row.Type
		if transactionType != gst.TransactionTypeIncome && transactionType != gst.TransactionTypeExpense {
			transactionType = gst.TransactionTypeExpense
			if row.Amount.Decimal.IsPositive() {
				transactionType = gst.TransactionTypeIncome
			}
		}

		staged = append(staged, StagedRow{
			Date:         row.day,
			Amount:       amount,
			GSTIncluded:  gstIncluded,
			GSTClaimable: gst.ClaimableGST(amount, gstIncluded, transactionType),
			Type:         transactionType,
			Category:     category,
			Description:  description,
		})
	}

	if len(staged) == 0 {
		return result, nil
	}

	imported, err := i.store.InsertImported(ctx, userID, staged)
	if err != nil {
		return Result{}, err
	}
	result.Imported = imported
	return result, nil
}

// catalogCategory returns the catalog spelling of the chosen category. Empty
// and unknown names fall back to OtherGeneralExpenses.
func catalogCategory(id *string) string {
	if id == nil {
		return gst.OtherGeneralExpenses
	}
	category, ok := gst.LookupCategory(*id)
	if !ok {
		return gst.OtherGeneralExpenses
	}
	return category.Name
}
