package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// UpdateTransaction rewrites a transaction. Both the stored date and the new
// date must be in periods that are not filed.
type UpdateTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Fields        TransactionFields

	Updated *sqlconfig.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	values, err := u.Fields.values(u.UserID)
	if err != nil {
		return err
	}

	existing, err := writer.Transactions.FindByIDForUpdate(ctx, u.UserID, u.TransactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}

	gate, err := newPeriodGate(ctx, writer, u.UserID, "update")
	if err != nil {
		return err
	}
	if err := gate.allows(ctx, existing.Date); err != nil {
		return err
	}
	if err := gate.allows(ctx, values.Date); err != nil {
		return err
	}

	u.Updated, err = writer.Transactions.Update(ctx, u.TransactionID, values)
	if err != nil {
		return err
	}
	if u.Updated == nil {
		return ErrTransactionNotFound
	}

	return nil
}
