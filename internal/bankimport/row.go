package bankimport

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow is one bank statement line after column mapping. Date is a
// normalized YYYY-MM-DD string, empty when the cell could not be read.
type RawRow struct {
	Date         string
	Description  string
	Counterparty string
	// Amount is signed. Positive amounts are money in.
	Amount decimal.NullDecimal
}

// Valid reports whether the row has both a date and an amount.
func (r RawRow) Valid() bool {
	return r.Date != "" && r.Amount.Valid
}

var dateSeparators = regexp.MustCompile(`[/-]`)

// NormalizeDate accepts YYYY/MM/DD or YYYY-MM-DD and zero-pads month and day.
// Any other shape returns false.
func NormalizeDate(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}

	parts := dateSeparators.Split(trimmed, -1)
	if len(parts) != 3 {
		return "", false
	}
	year, month, day := parts[0], parts[1], parts[2]
	if year == "" || month == "" || day == "" {
		return "", false
	}

	return year + "-" + padTwo(month) + "-" + padTwo(day), true
}

func padTwo(value string) string {
	if len(value) < 2 {
		return strings.Repeat("0", 2-len(value)) + value
	}
	return value
}

var nonAmountChars = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount strips currency symbols and thousands separators before
// parsing. Unparsable input returns false.
func ParseAmount(value string) (decimal.Decimal, bool) {
	cleaned := nonAmountChars.ReplaceAllString(value, "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

func parseNullAmount(value string) decimal.NullDecimal {
	amount, ok := ParseAmount(value)
	return decimal.NullDecimal{Decimal: amount, Valid: ok}
}

func normalizeOrEmpty(value string) string {
	date, ok := NormalizeDate(value)
	if !ok {
		return ""
	}
	return date
}

// Positional export layout: Date, Unique Id, Tran Type, Cheque Number,
// Payee, Memo, Amount.
const (
	colDate = iota
	colUniqueID
	colTranType
	colChequeNumber
	colPayee
	colMemo
	colAmount
)

// FindPositionalHeader returns the index of the first row whose first cell is
// "Date" and seventh cell is "Amount", or -1.
func FindPositionalHeader(rows [][]string) int {
	for i, row := range rows {
		if len(row) <= colAmount {
			continue
		}
		if strings.TrimSpace(row[colDate]) == "Date" && strings.TrimSpace(row[colAmount]) == "Amount" {
			return i
		}
	}
	return -1
}

// MapPositionalRow maps a data row of the positional layout.
func MapPositionalRow(cells []string) RawRow {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	return RawRow{
		Date:         normalizeOrEmpty(cell(colDate)),
		Description:  cell(colMemo),
		Counterparty: cell(colPayee),
		Amount:       parseNullAmount(cell(colAmount)),
	}
}

// MapKeyedRow maps a row keyed by header name. Header names are matched
// case-insensitively.
func MapKeyedRow(row map[string]string) RawRow {
	normalized := make(map[string]string, len(row))
	for key, value := range row {
		normalized[strings.ToLower(strings.TrimSpace(key))] = value
	}

	pickValue := func(keys ...string) string {
		for _, key := range keys {
			if value := strings.TrimSpace(normalized[key]); value != "" {
				return value
			}
		}
		return ""
	}

	pickCombined := func(keys ...string) string {
		var parts []string
		for _, key := range keys {
			if value := strings.TrimSpace(normalized[key]); value != "" {
				parts = append(parts, value)
			}
		}
		return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	}

	description := pickCombined("description", "particulars", "code", "reference")
	if description == "" {
		description = pickValue("description")
	}

	return RawRow{
		Date:         normalizeOrEmpty(pickValue("date", "transaction date")),
		Description:  description,
		Counterparty: pickValue("payee", "other party", "name"),
		Amount:       parseNullAmount(pickValue("amount")),
	}
}
