package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// LoginLink is a single use sign-in token. Only the token hash is stored.
type LoginLink struct {
	TokenHash string       `db:"token_hash"`
	UserID    uuid.UUID    `db:"user_id"`
	ExpiresAt time.Time    `db:"expires_at"`
	UsedAt    sql.NullTime `db:"used_at"`
	CreatedAt time.Time    `db:"created_at"`
}

//go:generate mockery --name IUserTable --output . --outpkg sqlconfig --filename mock_IUserTable.go --with-expecter
type IUserTable interface {
	FindOrCreateByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}

//go:generate mockery --name ILoginLinkTable --output . --outpkg sqlconfig --filename mock_ILoginLinkTable.go --with-expecter
type ILoginLinkTable interface {
	Insert(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	Consume(ctx context.Context, tokenHash string, now time.Time) (*LoginLink, error)
}
