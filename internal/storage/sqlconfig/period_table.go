package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/gst-server/internal/period"
)

const periodsTable = "gst_periods"

var _ IPeriodTable = (*PeriodsTable)(nil)

type PeriodsTable struct {
	exec bob.Executor
}

func NewPeriodsTable(exec bob.Executor) *PeriodsTable {
	return &PeriodsTable{exec: exec}
}

func (t *PeriodsTable) one(ctx context.Context, q bob.Query) (*Period, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Period]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Find returns nil when no row exists for the range.
func (t *PeriodsTable) Find(ctx context.Context, userID uuid.UUID, r period.Range) (*Period, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(periodsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("start_date").EQ(psql.Arg(r.Start))),
		sm.Where(psql.Quote("end_date").EQ(psql.Arg(r.End))),
	)
	return t.one(ctx, q)
}

func (t *PeriodsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Period, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(periodsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return t.one(ctx, q)
}

// InsertIfAbsent creates an open period for the range. When another writer
// created it first the existing row is returned instead.
func (t *PeriodsTable) InsertIfAbsent(ctx context.Context, userID uuid.UUID, r period.Range) (*Period, error) {
	q := psql.Insert(
		im.Into(periodsTable, "user_id", "start_date", "end_date", "status"),
		im.Values(psql.Arg(userID, r.Start, r.End, string(period.StatusOpen))),
		im.OnConflict("user_id", "start_date", "end_date").DoNothing(),
		im.Returning("*"),
	)
	row, err := t.one(ctx, q)
	if err != nil || row != nil {
		return row, err
	}
	return t.Find(ctx, userID, r)
}

func (t *PeriodsTable) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status period.Status) (*Period, error) {
	q := psql.Update(
		um.Table(periodsTable),
		um.SetCol("status").ToArg(string(status)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning("*"),
	)
	return t.one(ctx, q)
}

// ListRecent returns the user's periods, latest start date first.
func (t *PeriodsTable) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*Period, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(periodsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("start_date")).Desc(),
		sm.Limit(limit),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Period]())
}
