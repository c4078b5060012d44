package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/gst-server/internal/config"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// Storage is the read side of the database. Writes go through Write, which
// opens a transaction.
type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Periods      sqlconfig.IPeriodTable
	Settings     sqlconfig.ISettingsTable
	Users        sqlconfig.IUserTable
	LoginLinks   sqlconfig.ILoginLinkTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}

	return NewStorageFromDB(db)
}

func NewStorageFromDB(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Periods:      sqlconfig.NewPeriodsTable(exec),
		Settings:     sqlconfig.NewSettingsTable(exec),
		Users:        sqlconfig.NewUsersTable(exec),
		LoginLinks:   sqlconfig.NewLoginLinksTable(exec),
	}
}

// Write begins a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := bob.NewDB(s.DB).BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
