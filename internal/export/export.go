package export

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
)

// Row is one transaction as written to an export.
type Row struct {
	Date         time.Time
	Type         gst.TransactionType
	Category     string
	Description  string
	Amount       decimal.Decimal
	GSTIncluded  bool
	GSTClaimable decimal.Decimal
	ReceiptURL   string
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func newWriter(w io.Writer) *csv.Writer {
	return csv.NewWriter(w)
}

// GSTReturnFilename names the ledger export for a range.
func GSTReturnFilename(from, to time.Time) string {
	return "gst-return-" + from.Format("20060102") + "-" + to.Format("20060102") + ".csv"
}

// StatementFilename names the statement export for a range.
func StatementFilename(from, to time.Time) string {
	return "gst-statement-" + from.Format(period.DateLayout) + "-" + to.Format(period.DateLayout) + ".csv"
}

// WriteGSTReturn writes the flat ledger used for a GST return. Rows in
// categories that do not participate in GST are left out.
func WriteGSTReturn(w io.Writer, rows []Row) error {
	writer := newWriter(w)
	if err := writer.Write([]string{"Date", "Category", "Description", "Amount", "GstIncluded", "GstPortion", "Type"}); err != nil {
		return err
	}

	for _, row := range rows {
		if !gst.IsCategoryIncludedInGST(row.Category) {
			continue
		}

		amount := row.Amount.Abs()
		portion := decimal.Zero
		if row.GSTIncluded {
			portion = gst.GSTPortion(amount)
		}

		record := []string{
			row.Date.Format(period.DateLayout),
			row.Category,
			row.Description,
			amount.StringFixed(2),
			yesNo(row.GSTIncluded),
			portion.StringFixed(2),
			string(row.Type),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Statement is the input for a period statement export.
type Statement struct {
	From    time.Time
	To      time.Time
	Summary gst.Summary
	Rows    []Row
}

// WriteStatement writes a key/value preamble with the period figures, a blank
// line and then every transaction with a signed amount.
func WriteStatement(w io.Writer, statement Statement) error {
	writer := newWriter(w)

	preamble := [][]string{
		{"Period from", statement.From.Format(period.DateLayout)},
		{"Period to", statement.To.Format(period.DateLayout)},
		{"Total spending (incl GST)", statement.Summary.TotalSpendingInclGST.StringFixed(2)},
		{"Total sales (GST-incl)", statement.Summary.TotalSalesInclGST.StringFixed(2)},
		{"GST to claim", statement.Summary.GSTToClaim.StringFixed(2)},
		{"GST on sales", statement.Summary.GSTOnSales.StringFixed(2)},
		{"Net GST", statement.Summary.NetGST.StringFixed(2)},
	}
	if err := writer.WriteAll(preamble); err != nil {
		return err
	}

	// An empty record is written as a bare newline.
	if err := writer.Write(nil); err != nil {
		return err
	}

	if err := writer.Write([]string{"Date", "Type", "Category", "Description", "Amount", "GST claimable", "GST included", "Receipt URL"}); err != nil {
		return err
	}
	for _, row := range statement.Rows {
		amount := row.Amount.Abs()
		if row.Type != gst.TransactionTypeIncome {
			amount = amount.Neg()
		}
		record := []string{
			row.Date.Format(period.DateLayout),
			string(row.Type),
			row.Category,
			strings.TrimSpace(row.Description),
			amount.StringFixed(2),
			row.GSTClaimable.StringFixed(2),
			yesNo(row.GSTIncluded),
			row.ReceiptURL,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
