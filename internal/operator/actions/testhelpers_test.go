package actions

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

type testWriter struct {
	writer       *storage.Writer
	transactions *sqlconfig.MockITransactionTable
	periods      *sqlconfig.MockIPeriodTable
	settings     *sqlconfig.MockISettingsTable
	users        *sqlconfig.MockIUserTable
	loginLinks   *sqlconfig.MockILoginLinkTable
}

func newTestWriter(t *testing.T) *testWriter {
	t.Helper()
	tw := &testWriter{
		transactions: sqlconfig.NewMockITransactionTable(t),
		periods:      sqlconfig.NewMockIPeriodTable(t),
		settings:     sqlconfig.NewMockISettingsTable(t),
		users:        sqlconfig.NewMockIUserTable(t),
		loginLinks:   sqlconfig.NewMockILoginLinkTable(t),
	}
	tw.writer = &storage.Writer{
		Transactions: tw.transactions,
		Periods:      tw.periods,
		Settings:     tw.settings,
		Users:        tw.users,
		LoginLinks:   tw.loginLinks,
	}
	return tw
}

// expectFrequency makes the user's stored filing frequency available.
func (tw *testWriter) expectFrequency(userID uuid.UUID, frequency period.Frequency) {
	tw.settings.EXPECT().Find(mock.Anything, userID).
		Return(&sqlconfig.Settings{UserID: userID, GSTFrequency: frequency}, nil)
}

// expectPeriodStatus answers the lock gate for the period containing date.
// A zero status means no stored period.
func (tw *testWriter) expectPeriodStatus(userID uuid.UUID, frequency period.Frequency, date time.Time, status period.Status) {
	r := period.PeriodRange(frequency, date)
	if status == "" {
		tw.periods.EXPECT().Find(mock.Anything, userID, r).Return(nil, nil)
		return
	}
	tw.periods.EXPECT().Find(mock.Anything, userID, r).
		Return(&sqlconfig.Period{UserID: userID, StartDate: r.Start, EndDate: r.End, Status: status}, nil)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
