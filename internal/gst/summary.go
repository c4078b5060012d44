package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Line is the subset of a transaction needed for GST reporting.
type Line struct {
	Category     string
	Description  string
	Amount       decimal.Decimal
	GSTIncluded  bool
	GSTClaimable decimal.Decimal
	Type         TransactionType
}

// Summary holds the figures reported for a GST return.
type Summary struct {
	TotalSalesInclGST    decimal.Decimal
	TotalSpendingInclGST decimal.Decimal
	GSTOnSales           decimal.Decimal
	GSTToClaim           decimal.Decimal
	// NetGST is positive when tax is owed and negative when a refund is due.
	NetGST decimal.Decimal
}

// Summarize builds the GST return figures for a set of transactions. Only
// categories that participate in GST are counted. GST on sales is summed
// unrounded and rounded once at the end.
func Summarize(lines []Line) Summary {
	summary := Summary{
		TotalSalesInclGST:    decimal.Zero,
		TotalSpendingInclGST: decimal.Zero,
		GSTOnSales:           decimal.Zero,
		GSTToClaim:           decimal.Zero,
		NetGST:               decimal.Zero,
	}

	for _, line := range lines {
		if !IsCategoryIncludedInGST(line.Category) {
			continue
		}

		amount := line.Amount.Abs()
		switch line.Type {
		case TransactionTypeIncome:
			summary.TotalSalesInclGST = summary.TotalSalesInclGST.Add(amount)
			if line.GSTIncluded {
				summary.GSTOnSales = summary.GSTOnSales.Add(GSTPortion(amount))
			}
		default:
			summary.TotalSpendingInclGST = summary.TotalSpendingInclGST.Add(amount)
			if line.GSTIncluded {
				summary.GSTToClaim = summary.GSTToClaim.Add(ClaimableGST(amount, true, TransactionTypeExpense))
			}
		}
	}

	summary.GSTOnSales = summary.GSTOnSales.Round(Places)
	summary.NetGST = summary.GSTOnSales.Sub(summary.GSTToClaim)
	return summary
}

// SpendingSummary is the dashboard view of expenses for a date range.
type SpendingSummary struct {
	TotalSpending decimal.Decimal
	// GSTAble is the spend that had GST included.
	GSTAble    decimal.Decimal
	GSTToClaim decimal.Decimal
}

// IsIRDSettlement reports whether a transaction is a payment to or refund
// from IRD. Those rows move GST around and are not business spending.
func IsIRDSettlement(category, description string) bool {
	return strings.Contains(strings.ToLower(category), "ird") ||
		strings.Contains(strings.ToLower(description), "ird")
}

// SummarizeSpending totals expenses for the dashboard, leaving out IRD
// settlements. GSTToClaim uses the stored claimable figure of each row.
func SummarizeSpending(lines []Line) SpendingSummary {
	summary := SpendingSummary{
		TotalSpending: decimal.Zero,
		GSTAble:       decimal.Zero,
		GSTToClaim:    decimal.Zero,
	}

	for _, line := range lines {
		if line.Type == TransactionTypeIncome || IsIRDSettlement(line.Category, line.Description) {
			continue
		}
		amount := line.Amount.Abs()
		summary.TotalSpending = summary.TotalSpending.Add(amount)
		if line.GSTIncluded {
			summary.GSTAble = summary.GSTAble.Add(amount)
		}
		summary.GSTToClaim = summary.GSTToClaim.Add(line.GSTClaimable)
	}

	return summary
}
