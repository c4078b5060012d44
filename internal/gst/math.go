package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType carries the direction of a transaction. Amounts are stored
// non-negative and the type decides whether money came in or went out.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// ParseTransactionType treats anything other than "income" as an expense.
func ParseTransactionType(value string) TransactionType {
	if strings.EqualFold(strings.TrimSpace(value), string(TransactionTypeIncome)) {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

func (t TransactionType) String() string {
	return string(t)
}

var (
	three = decimal.NewFromInt(3)
	// 15% GST on an inclusive total is rate/(1+rate) = 15/115 = 3/23.
	twentyThree = decimal.NewFromInt(23)
)

// Places is the number of decimal places stored for money values.
const Places = 2

// GSTPortion returns the tax portion of a GST-inclusive amount. The result is
// not rounded and negative amounts are not special cased.
func GSTPortion(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(three).Div(twentyThree)
}

// NetAmount returns the GST-exclusive part of an inclusive amount.
func NetAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Sub(GSTPortion(amount))
}

// ClaimableGST returns the GST that can be claimed back on a transaction,
// rounded half away from zero to 2 decimal places. Income and GST-exclusive
// transactions claim nothing.
func ClaimableGST(amount decimal.Decimal, gstIncluded bool, transactionType TransactionType) decimal.Decimal {
	if !gstIncluded || transactionType == TransactionTypeIncome {
		return decimal.Zero
	}
	return GSTPortion(amount.Abs()).Round(Places)
}

// RoundMoney rounds a money value to the stored precision.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(Places)
}
