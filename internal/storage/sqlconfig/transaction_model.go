package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/gst"
)

// TransactionSource records how a transaction was created.
type TransactionSource string

const (
	SourceManual     TransactionSource = "manual"
	SourceBankImport TransactionSource = "bank_import"
)

// Transaction represents a transactions row.
type Transaction struct {
	ID           uuid.UUID           `db:"id"`
	UserID       uuid.UUID           `db:"user_id"`
	Date         time.Time           `db:"date"`
	Category     string              `db:"category"`
	Description  string              `db:"description"`
	Amount       decimal.Decimal     `db:"amount"`
	GSTIncluded  bool                `db:"gst_included"`
	GSTClaimable decimal.Decimal     `db:"gst_claimable"`
	Type         gst.TransactionType `db:"type"`
	ReceiptURL   sql.NullString      `db:"receipt_url"`
	Source       TransactionSource   `db:"source"`
	CreatedAt    time.Time           `db:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at"`
	DeletedAt    sql.NullTime        `db:"deleted_at"`
}

// TransactionValues holds the writable columns of a transaction.
type TransactionValues struct {
	UserID       uuid.UUID
	Date         time.Time
	Category     string
	Description  string
	Amount       decimal.Decimal
	GSTIncluded  bool
	GSTClaimable decimal.Decimal
	Type         gst.TransactionType
	ReceiptURL   *string
	Source       TransactionSource
}

// TransactionFilter specifies filters for listing transactions. Soft deleted
// rows are always excluded.
type TransactionFilter struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
	// Ascending orders by date oldest first. The default is newest first.
	Ascending bool
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output . --outpkg sqlconfig --filename mock_ITransactionTable.go --with-expecter
type ITransactionTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, values *TransactionValues) (*Transaction, error)
	InsertMany(ctx context.Context, values []*TransactionValues) (int, error)
	Update(ctx context.Context, id uuid.UUID, values *TransactionValues) (*Transaction, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID, deletedAt time.Time) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	NormalizeAmounts(ctx context.Context, userID uuid.UUID) (int64, error)
}
