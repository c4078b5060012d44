package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/metrics"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPeriodNotFound      = errors.New("GST period not found")
	ErrUnknownCategory     = errors.New("unknown category")
)

// IAction is a unit of work run by an Operator inside one database
// transaction. Returning an error rolls the transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// periodGate checks dates against the writer's period table using the
// user's filing frequency, loaded once.
type periodGate struct {
	writer    *storage.Writer
	userID    uuid.UUID
	operation string
	frequency period.Frequency
}

func newPeriodGate(ctx context.Context, writer *storage.Writer, userID uuid.UUID, operation string) (*periodGate, error) {
	frequency, err := storage.LoadFrequency(ctx, writer.Settings, userID)
	if err != nil {
		return nil, err
	}
	return &periodGate{
		writer:    writer,
		userID:    userID,
		operation: operation,
		frequency: frequency,
	}, nil
}

func (g *periodGate) allows(ctx context.Context, date time.Time) error {
	lookup := storage.PeriodLookup{Periods: g.writer.Periods}
	err := period.EnsurePeriodAllowsDate(ctx, lookup, g.userID, date, g.frequency)
	if errors.Is(err, period.ErrPeriodLocked) {
		metrics.PeriodLockRejections.WithLabelValues(g.operation).Inc()
		return err
	}
	if err != nil {
		return fmt.Errorf("checking GST period: %w", err)
	}
	return nil
}
