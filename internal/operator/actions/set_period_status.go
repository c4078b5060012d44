package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/metrics"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

type SetPeriodStatus struct {
	UserID   uuid.UUID
	PeriodID uuid.UUID
	Status   period.Status

	Updated *sqlconfig.Period
}

func (s *SetPeriodStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Periods.FindByID(ctx, s.UserID, s.PeriodID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPeriodNotFound
	}

	if err := period.ValidateTransition(existing.Status, s.Status); err != nil {
		return err
	}
	if existing.Status == s.Status {
		s.Updated = existing
		return nil
	}

	s.Updated, err = writer.Periods.UpdateStatus(ctx, s.UserID, s.PeriodID, s.Status)
	if err != nil {
		return err
	}
	if s.Updated == nil {
		return ErrPeriodNotFound
	}

	metrics.PeriodStatusChanges.WithLabelValues(string(s.Status)).Inc()
	return nil
}
