package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

type SaveSettings struct {
	UserID    uuid.UUID
	Frequency period.Frequency

	Saved *sqlconfig.Settings
}

func (s *SaveSettings) Perform(ctx context.Context, writer *storage.Writer) error {
	saved, err := writer.Settings.Upsert(ctx, s.UserID, s.Frequency)
	if err != nil {
		return err
	}

	s.Saved = saved
	return nil
}
