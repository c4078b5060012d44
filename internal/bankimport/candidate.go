package bankimport

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/gst"
)

// Candidate is a bank row offered to the user before import.
type Candidate struct {
	// ID is only stable for the lifetime of one preview.
	ID           uuid.UUID
	Import       bool
	Date         string
	Description  string
	Counterparty string
	// Amount is signed as it appeared in the bank export.
	Amount      decimal.NullDecimal
	Type        gst.TransactionType
	CategoryID  *string
	GSTIncluded *bool
}

// BuildCandidate infers type, category and GST flag for a raw row.
func BuildCandidate(raw RawRow, categories []gst.CategoryOption) Candidate {
	transactionType := gst.TransactionTypeExpense
	if raw.Amount.Valid && raw.Amount.Decimal.IsPositive() {
		transactionType = gst.TransactionTypeIncome
	}

	candidate := Candidate{
		ID:           uuid.Must(uuid.NewV4()),
		Import:       true,
		Date:         raw.Date,
		Description:  raw.Description,
		Counterparty: raw.Counterparty,
		Amount:       raw.Amount,
		Type:         transactionType,
	}

	categoryName := gst.OtherGeneralExpenses
	if id, ok := GuessCategory(raw.Description+" "+raw.Counterparty, transactionType, categories); ok {
		candidate.CategoryID = &id
		categoryName = categoryNameForID(id, categories)
	}
	gstIncluded := gst.DefaultGSTIncluded(categoryName)
	candidate.GSTIncluded = &gstIncluded

	return candidate
}

// BuildCandidates maps every raw row.
func BuildCandidates(rows []RawRow, categories []gst.CategoryOption) []Candidate {
	candidates := make([]Candidate, len(rows))
	for i, row := range rows {
		candidates[i] = BuildCandidate(row, categories)
	}
	return candidates
}

func categoryNameForID(id string, categories []gst.CategoryOption) string {
	for _, category := range categories {
		if category.ID == id {
			return category.Name
		}
	}
	return id
}
