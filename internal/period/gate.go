package period

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// StatusLookup finds the stored status of a user's period. found is false
// when no row exists for the exact range.
type StatusLookup interface {
	FindStatus(ctx context.Context, userID uuid.UUID, r Range) (status Status, found bool, err error)
}

// StatusForDate returns the status of the period containing date. Periods
// without a stored row are open.
func StatusForDate(ctx context.Context, lookup StatusLookup, userID uuid.UUID, date time.Time, frequency Frequency) (Status, error) {
	status, found, err := lookup.FindStatus(ctx, userID, PeriodRange(frequency, date))
	if err != nil {
		return "", err
	}
	if !found {
		return StatusOpen, nil
	}
	return status, nil
}

// EnsurePeriodAllowsDate returns ErrPeriodLocked when the period containing
// date has been filed. It never writes.
func EnsurePeriodAllowsDate(ctx context.Context, lookup StatusLookup, userID uuid.UUID, date time.Time, frequency Frequency) error {
	status, err := StatusForDate(ctx, lookup, userID, date, frequency)
	if err != nil {
		return err
	}
	return CheckStatusAllowsWrite(status)
}

// StatusCache memoizes period statuses for one batch of dates.
type StatusCache struct {
	lookup    StatusLookup
	userID    uuid.UUID
	frequency Frequency
	statuses  map[string]Status
}

func NewStatusCache(lookup StatusLookup, userID uuid.UUID, frequency Frequency) *StatusCache {
	return &StatusCache{
		lookup:    lookup,
		userID:    userID,
		frequency: frequency,
		statuses:  make(map[string]Status),
	}
}

// StatusForDate looks up each distinct period at most once.
func (c *StatusCache) StatusForDate(ctx context.Context, date time.Time) (Status, error) {
	key := PeriodRange(c.frequency, date).Key()
	if status, ok := c.statuses[key]; ok {
		return status, nil
	}

	status, err := StatusForDate(ctx, c.lookup, c.userID, date, c.frequency)
	if err != nil {
		return "", err
	}
	c.statuses[key] = status
	return status, nil
}
