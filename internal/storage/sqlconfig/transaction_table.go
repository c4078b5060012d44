package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTable = "transactions"

var transactionInsertColumns = []string{
	"user_id", "date", "category", "description", "amount",
	"gst_included", "gst_claimable", "type", "receipt_url", "source",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

func ownedLiveTransaction(userID, id uuid.UUID) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	}
}

// FindByID returns nil when the row does not exist, belongs to another user
// or has been deleted.
func (t *TransactionsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return t.findOne(ctx, psql.Select(ownedLiveTransaction(userID, id)...))
}

// FindByIDForUpdate is FindByID with a row lock. Only useful inside a transaction.
func (t *TransactionsTable) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	mods := append(ownedLiveTransaction(userID, id), sm.ForUpdate())
	return t.findOne(ctx, psql.Select(mods...))
}

func (t *TransactionsTable) findOne(ctx context.Context, q bob.Query) (*Transaction, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func transactionValueRow(values *TransactionValues) bob.Expression {
	source := values.Source
	if source == "" {
		source = SourceManual
	}
	var receiptURL sql.NullString
	if values.ReceiptURL != nil && *values.ReceiptURL != "" {
		receiptURL = sql.NullString{String: *values.ReceiptURL, Valid: true}
	}

	return psql.Arg(
		values.UserID,
		values.Date,
		values.Category,
		values.Description,
		values.Amount,
		values.GSTIncluded,
		values.GSTClaimable,
		string(values.Type),
		receiptURL,
		string(source),
	)
}

// Insert creates a transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, values *TransactionValues) (*Transaction, error) {
	q := psql.Insert(
		im.Into(transactionsTable, transactionInsertColumns...),
		im.Values(transactionValueRow(values)),
		im.Returning("*"),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}

// InsertMany inserts every row in a single statement.
func (t *TransactionsTable) InsertMany(ctx context.Context, values []*TransactionValues) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	mods := []bob.Mod[*dialect.InsertQuery]{im.Into(transactionsTable, transactionInsertColumns...)}
	for _, v := range values {
		mods = append(mods, im.Values(transactionValueRow(v)))
	}
	result, err := bob.Exec(ctx, t.exec, psql.Insert(mods...))
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return len(values), nil
	}
	return int(affected), nil
}

// Update overwrites the writable columns of a live row owned by values.UserID.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, values *TransactionValues) (*Transaction, error) {
	var receiptURL sql.NullString
	if values.ReceiptURL != nil && *values.ReceiptURL != "" {
		receiptURL = sql.NullString{String: *values.ReceiptURL, Valid: true}
	}

	q := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("date").ToArg(values.Date),
		um.SetCol("category").ToArg(values.Category),
		um.SetCol("description").ToArg(values.Description),
		um.SetCol("amount").ToArg(values.Amount),
		um.SetCol("gst_included").ToArg(values.GSTIncluded),
		um.SetCol("gst_claimable").ToArg(values.GSTClaimable),
		um.SetCol("type").ToArg(string(values.Type)),
		um.SetCol("receipt_url").ToArg(receiptURL),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(values.UserID))),
		um.Where(psql.Quote("deleted_at").IsNull()),
		um.Returning("*"),
	)
	return t.findOne(ctx, q)
}

// SoftDelete marks a row deleted. Deleting a missing row is not an error.
func (t *TransactionsTable) SoftDelete(ctx context.Context, userID, id uuid.UUID, deletedAt time.Time) error {
	q := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("deleted_at").ToArg(deletedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("deleted_at").IsNull()),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns a user's live transactions ordered by date.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	}
	if filter.From != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.From))))
	}
	if filter.To != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.To))))
	}
	if filter.Ascending {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("date")).Asc(),
			sm.OrderBy(psql.Quote("created_at")).Asc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("date")).Desc(),
			sm.OrderBy(psql.Quote("created_at")).Desc(),
		)
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// NormalizeAmounts rewrites every amount of a user to its absolute value.
// Deleted rows are included.
func (t *TransactionsTable) NormalizeAmounts(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("amount").To(psql.F("abs", psql.Quote("amount"))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("amount").LT(psql.Arg(0))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
