package bankimport

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/bankimport"
	"github.com/carson-networks/gst-server/internal/gst"
)

// Candidate is a bank row the user can review before import.
type Candidate struct {
	ID           string  `json:"id" doc:"Client side id, stable for one preview only"`
	Import       bool    `json:"import" doc:"Whether the row is selected for import"`
	Date         string  `json:"date" doc:"YYYY-MM-DD, empty when the bank date could not be read"`
	Description  string  `json:"description"`
	Counterparty string  `json:"counterparty,omitempty"`
	Amount       *string `json:"amount,omitempty" doc:"Signed amount as it appeared in the bank export"`
	Type         string  `json:"type" enum:"income,expense"`
	CategoryID   *string `json:"categoryID,omitempty" doc:"Guessed or chosen category name"`
	GSTIncluded  *bool   `json:"gstIncluded,omitempty"`
}

func toCandidate(c bankimport.Candidate) Candidate {
	out := Candidate{
		ID:           c.ID.String(),
		Import:       c.Import,
		Date:         c.Date,
		Description:  c.Description,
		Counterparty: c.Counterparty,
		Type:         string(c.Type),
		CategoryID:   c.CategoryID,
		GSTIncluded:  c.GSTIncluded,
	}
	if c.Amount.Valid {
		amount := c.Amount.Decimal.StringFixed(2)
		out.Amount = &amount
	}
	return out
}

// fromCandidate is lenient: an unparsable amount or id is kept as invalid
// and counted as skipped by the importer.
func fromCandidate(c Candidate) bankimport.Candidate {
	out := bankimport.Candidate{
		ID:           uuid.FromStringOrNil(c.ID),
		Import:       c.Import,
		Date:         c.Date,
		Description:  c.Description,
		Counterparty: c.Counterparty,
		Type:         gst.TransactionType(c.Type),
		CategoryID:   c.CategoryID,
		GSTIncluded:  c.GSTIncluded,
	}
	if c.Amount != nil {
		if amount, err := decimal.NewFromString(*c.Amount); err == nil {
			out.Amount = decimal.NewNullDecimal(amount)
		}
	}
	return out
}
