package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// fakeProcessor records actions and lets a test fill in their results.
type fakeProcessor struct {
	processed []actions.IAction
	handle    func(action actions.IAction) error
}

func (p *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	p.processed = append(p.processed, action)
	if p.handle == nil {
		return nil
	}
	return p.handle(action)
}

type testStore struct {
	storage      *storage.Storage
	transactions *sqlconfig.MockITransactionTable
	periods      *sqlconfig.MockIPeriodTable
	settings     *sqlconfig.MockISettingsTable
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	ts := &testStore{
		transactions: sqlconfig.NewMockITransactionTable(t),
		periods:      sqlconfig.NewMockIPeriodTable(t),
		settings:     sqlconfig.NewMockISettingsTable(t),
	}
	ts.storage = &storage.Storage{
		Transactions: ts.transactions,
		Periods:      ts.periods,
		Settings:     ts.settings,
	}
	return ts
}

func signedIn() (context.Context, uuid.UUID) {
	userID := uuid.Must(uuid.NewV4())
	return auth.WithUser(context.Background(), userID, "owner@example.co.nz"), userID
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
