package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/period"
)

// Period represents a gst_periods row. A period is unique per user and date range.
type Period struct {
	ID        uuid.UUID     `db:"id"`
	UserID    uuid.UUID     `db:"user_id"`
	StartDate time.Time     `db:"start_date"`
	EndDate   time.Time     `db:"end_date"`
	Status    period.Status `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (p *Period) Range() period.Range {
	return period.Range{Start: period.Day(p.StartDate), End: period.Day(p.EndDate)}
}

//go:generate mockery --name IPeriodTable --output . --outpkg sqlconfig --filename mock_IPeriodTable.go --with-expecter
type IPeriodTable interface {
	Find(ctx context.Context, userID uuid.UUID, r period.Range) (*Period, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Period, error)
	InsertIfAbsent(ctx context.Context, userID uuid.UUID, r period.Range) (*Period, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status period.Status) (*Period, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*Period, error)
}
