package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const (
	usersTable      = "users"
	loginLinksTable = "login_links"
)

var (
	_ IUserTable      = (*UsersTable)(nil)
	_ ILoginLinkTable = (*LoginLinksTable)(nil)
)

type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// FindOrCreateByEmail matches emails case-insensitively.
func (t *UsersTable) FindOrCreateByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Insert(
		im.Into(usersTable, "email"),
		im.Values(psql.Arg(strings.ToLower(strings.TrimSpace(email)))),
		im.OnConflict("email").DoUpdate(im.SetExcluded("email")),
		im.Returning("*"),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
}

// FindByID returns nil when the user does not exist.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(usersTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

type LoginLinksTable struct {
	exec bob.Executor
}

func NewLoginLinksTable(exec bob.Executor) *LoginLinksTable {
	return &LoginLinksTable{exec: exec}
}

func (t *LoginLinksTable) Insert(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	q := psql.Insert(
		im.Into(loginLinksTable, "token_hash", "user_id", "expires_at"),
		im.Values(psql.Arg(tokenHash, userID, expiresAt)),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Consume marks an unexpired, unused link as used. It returns nil when no
// such link exists.
func (t *LoginLinksTable) Consume(ctx context.Context, tokenHash string, now time.Time) (*LoginLink, error) {
	q := psql.Update(
		um.Table(loginLinksTable),
		um.SetCol("used_at").ToArg(now),
		um.Where(psql.Quote("token_hash").EQ(psql.Arg(tokenHash))),
		um.Where(psql.Quote("used_at").IsNull()),
		um.Where(psql.Quote("expires_at").GT(psql.Arg(now))),
		um.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*LoginLink]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}
