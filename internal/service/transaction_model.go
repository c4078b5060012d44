package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/export"
	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID           uuid.UUID
	Date         time.Time
	Category     string
	Description  string
	Amount       decimal.Decimal
	GSTIncluded  bool
	GSTClaimable decimal.Decimal
	Type         gst.TransactionType
	ReceiptURL   *string
	Source       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransactionInput carries the fields a user submits for create and update.
type TransactionInput struct {
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	GSTIncluded bool
	Type        gst.TransactionType
	ReceiptURL  *string
}

func (in TransactionInput) fields() actions.TransactionFields {
	return actions.TransactionFields{
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		GSTIncluded: in.GSTIncluded,
		Type:        in.Type,
		ReceiptURL:  in.ReceiptURL,
	}
}

func transactionFromRow(row *sqlconfig.Transaction) Transaction {
	tx := Transaction{
		ID:           row.ID,
		Date:         period.Day(row.Date),
		Category:     row.Category,
		Description:  row.Description,
		Amount:       row.Amount,
		GSTIncluded:  row.GSTIncluded,
		GSTClaimable: row.GSTClaimable,
		Type:         gst.ParseTransactionType(string(row.Type)),
		Source:       string(row.Source),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.ReceiptURL.Valid {
		receiptURL := row.ReceiptURL.String
		tx.ReceiptURL = &receiptURL
	}
	return tx
}

func transactionsFromRows(rows []*sqlconfig.Transaction) []Transaction {
	if len(rows) == 0 {
		return nil
	}
	out := make([]Transaction, len(rows))
	for i, row := range rows {
		out[i] = transactionFromRow(row)
	}
	return out
}

func (t Transaction) line() gst.Line {
	return gst.Line{
		Category:     t.Category,
		Description:  t.Description,
		Amount:       t.Amount,
		GSTIncluded:  t.GSTIncluded,
		GSTClaimable: t.GSTClaimable,
		Type:         t.Type,
	}
}

func (t Transaction) exportRow() export.Row {
	row := export.Row{
		Date:         t.Date,
		Type:         t.Type,
		Category:     t.Category,
		Description:  t.Description,
		Amount:       t.Amount,
		GSTIncluded:  t.GSTIncluded,
		GSTClaimable: t.GSTClaimable,
	}
	if t.ReceiptURL != nil {
		row.ReceiptURL = *t.ReceiptURL
	}
	return row
}

func lines(transactions []Transaction) []gst.Line {
	out := make([]gst.Line, len(transactions))
	for i, t := range transactions {
		out[i] = t.line()
	}
	return out
}

// Dashboard is the overview for a date range.
type Dashboard struct {
	Range    period.Range
	Summary  gst.Summary
	Spending gst.SpendingSummary
	// Recent holds the newest transactions in the range, capped at RecentLimit.
	Recent []Transaction
	// TransactionCount is the number of transactions in the range.
	TransactionCount int
}
