package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/period"
)

// Settings represents a user_settings row.
type Settings struct {
	UserID       uuid.UUID        `db:"user_id"`
	GSTFrequency period.Frequency `db:"gst_frequency"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

//go:generate mockery --name ISettingsTable --output . --outpkg sqlconfig --filename mock_ISettingsTable.go --with-expecter
type ISettingsTable interface {
	Find(ctx context.Context, userID uuid.UUID) (*Settings, error)
	InsertIfAbsent(ctx context.Context, userID uuid.UUID, frequency period.Frequency) (*Settings, error)
	Upsert(ctx context.Context, userID uuid.UUID, frequency period.Frequency) (*Settings, error)
}
