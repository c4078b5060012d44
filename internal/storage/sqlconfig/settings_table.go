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
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/gst-server/internal/period"
)

const settingsTable = "user_settings"

var _ ISettingsTable = (*SettingsTable)(nil)

type SettingsTable struct {
	exec bob.Executor
}

func NewSettingsTable(exec bob.Executor) *SettingsTable {
	return &SettingsTable{exec: exec}
}

func (t *SettingsTable) one(ctx context.Context, q bob.Query) (*Settings, error) {
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Settings]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (t *SettingsTable) Find(ctx context.Context, userID uuid.UUID) (*Settings, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(settingsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	return t.one(ctx, q)
}

// InsertIfAbsent stores frequency unless the user already has settings, and
// returns whatever row is stored afterwards.
func (t *SettingsTable) InsertIfAbsent(ctx context.Context, userID uuid.UUID, frequency period.Frequency) (*Settings, error) {
	q := psql.Insert(
		im.Into(settingsTable, "user_id", "gst_frequency"),
		im.Values(psql.Arg(userID, string(frequency))),
		im.OnConflict("user_id").DoNothing(),
		im.Returning("*"),
	)
	row, err := t.one(ctx, q)
	if err != nil || row != nil {
		return row, err
	}
	return t.Find(ctx, userID)
}

func (t *SettingsTable) Upsert(ctx context.Context, userID uuid.UUID, frequency period.Frequency) (*Settings, error) {
	q := psql.Insert(
		im.Into(settingsTable, "user_id", "gst_frequency"),
		im.Values(psql.Arg(userID, string(frequency))),
		im.OnConflict("user_id").DoUpdate(
			im.SetExcluded("gst_frequency"),
			im.SetCol("updated_at").To(psql.Raw("now()")),
		),
		im.Returning("*"),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Settings]())
}
