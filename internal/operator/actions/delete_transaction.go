package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/storage"
)

// DeleteTransaction soft deletes a transaction dated in a period that is not filed.
type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Now           time.Time
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDForUpdate(ctx, d.UserID, d.TransactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}

	gate, err := newPeriodGate(ctx, writer, d.UserID, "delete")
	if err != nil {
		return err
	}
	if err := gate.allows(ctx, existing.Date); err != nil {
		return err
	}

	deletedAt := d.Now
	if deletedAt.IsZero() {
		deletedAt = time.Now().UTC()
	}
	return writer.Transactions.SoftDelete(ctx, d.UserID, d.TransactionID, deletedAt)
}
