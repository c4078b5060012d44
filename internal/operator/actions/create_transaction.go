package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// TransactionFields are the user-editable fields of a transaction.
type TransactionFields struct {
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	GSTIncluded bool
	Type        gst.TransactionType
	ReceiptURL  *string
}

// values normalizes the fields for storage. Amounts are stored as absolute
// values rounded to cents, and the claimable GST is derived from them.
func (f TransactionFields) values(userID uuid.UUID) (*sqlconfig.TransactionValues, error) {
	if !gst.IsKnownCategory(f.Category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, f.Category)
	}
	category, _ := gst.LookupCategory(f.Category)

	transactionType := f.Type
	if transactionType != gst.TransactionTypeIncome {
		transactionType = gst.TransactionTypeExpense
	}
	amount := gst.RoundMoney(f.Amount.Abs())

	return &sqlconfig.TransactionValues{
		UserID:       userID,
		Date:         period.Day(f.Date),
		Category:     category.Name,
		Description:  f.Description,
		Amount:       amount,
		GSTIncluded:  f.GSTIncluded,
		GSTClaimable: gst.ClaimableGST(amount, f.GSTIncluded, transactionType),
		Type:         transactionType,
		ReceiptURL:   f.ReceiptURL,
		Source:       sqlconfig.SourceManual,
	}, nil
}

type CreateTransaction struct {
	UserID uuid.UUID
	Fields TransactionFields

	Created *sqlconfig.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	values, err := c.Fields.values(c.UserID)
	if err != nil {
		return err
	}

	gate, err := newPeriodGate(ctx, writer, c.UserID, "create")
	if err != nil {
		return err
	}
	if err := gate.allows(ctx, values.Date); err != nil {
		return err
	}

	c.Created, err = writer.Transactions.Insert(ctx, values)
	if err != nil {
		return err
	}

	return nil
}
