package bankimport

import (
	"strings"

	"github.com/shopspring/decimal"
)

const dedupeTextLength = 40

// DedupeInput is the data a dedupe key is built from. Stored rows pass their
// stored description and no counterparty.
type DedupeInput struct {
	Date         string
	Amount       decimal.Decimal
	Counterparty string
	Description  string
}

// BuildDedupeKey returns date|amount|text where text is the lowercased
// counterparty and description truncated to 40 characters.
func BuildDedupeKey(input DedupeInput) string {
	date, ok := NormalizeDate(input.Date)
	if !ok {
		date = input.Date
	}

	text := NormalizeText(input.Counterparty + " " + input.Description)
	if runes := []rune(text); len(runes) > dedupeTextLength {
		text = string(runes[:dedupeTextLength])
	}

	return date + "|" + input.Amount.StringFixed(2) + "|" + text
}

// StoredDescription is the description persisted for an imported row.
func StoredDescription(counterparty, description string) string {
	var parts []string
	for _, part := range []string{strings.TrimSpace(counterparty), strings.TrimSpace(description)} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Imported transaction"
	}
	return strings.Join(parts, " - ")
}
