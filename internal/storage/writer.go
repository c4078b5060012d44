package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// Writer exposes the tables inside one database transaction.
type Writer struct {
	tx           *bob.Tx
	Transactions sqlconfig.ITransactionTable
	Periods      sqlconfig.IPeriodTable
	Settings     sqlconfig.ISettingsTable
	Users        sqlconfig.IUserTable
	LoginLinks   sqlconfig.ILoginLinkTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           &tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Periods:      sqlconfig.NewPeriodsTable(tx),
		Settings:     sqlconfig.NewSettingsTable(tx),
		Users:        sqlconfig.NewUsersTable(tx),
		LoginLinks:   sqlconfig.NewLoginLinksTable(tx),
	}
}

// Commit is a no-op for writers built without a transaction, as in tests.
func (w *Writer) Commit() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return nil
	}
	return w.tx.Rollback(context.Background())
}
