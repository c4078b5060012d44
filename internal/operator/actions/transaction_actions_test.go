package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

func officeSupplies(date time.Time, amount string) TransactionFields {
	return TransactionFields{
		Date:        date,
		Category:    "office supplies & stationery",
		Description: "Printer paper",
		Amount:      decimal.RequireFromString(amount),
		GSTIncluded: true,
		Type:        gst.TransactionTypeExpense,
	}
}

// -- CreateTransaction --

func TestCreateTransaction_NormalizesAndInserts(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := day(2025, 3, 14)
	tw := newTestWriter(t)
	tw.expectFrequency(userID, period.FrequencyTwoMonthly)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, date, period.StatusOpen)

	created := &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4())}
	tw.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v *sqlconfig.TransactionValues) bool {
		return v.UserID == userID &&
			v.Date.Equal(date) &&
			v.Category == "Office supplies & stationery" &&
			v.Amount.Equal(decimal.RequireFromString("100.00")) &&
			v.GSTClaimable.Equal(decimal.RequireFromString("13.04")) &&
			v.Type == gst.TransactionTypeExpense &&
			v.Source == sqlconfig.SourceManual
	})).Return(created, nil)

	action := &CreateTransaction{UserID: userID, Fields: officeSupplies(date, "-100.004")}
	require.NoError(t, action.Perform(context.Background(), tw.writer))
	assert.Same(t, created, action.Created)
}

func TestCreateTransaction_IncomeHasNoClaimableGST(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := day(2025, 3, 14)
	tw := newTestWriter(t)
	tw.expectFrequency(userID, period.FrequencyMonthly)
	tw.expectPeriodStatus(userID, period.FrequencyMonthly, date, "")

	tw.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v *sqlconfig.TransactionValues) bool {
		return v.Type == gst.TransactionTypeIncome && v.GSTClaimable.IsZero()
	})).Return(&sqlconfig.Transaction{}, nil)

	fields := officeSupplies(date, "230")
	fields.Category = "Other service income"
	fields.Type = gst.TransactionTypeIncome
	require.NoError(t, (&CreateTransaction{UserID: userID, Fields: fields}).Perform(context.Background(), tw.writer))
}

func TestCreateTransaction_FiledPeriodRejected(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := day(2025, 1, 10)
	tw := newTestWriter(t)
	tw.expectFrequency(userID, period.FrequencyTwoMonthly)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, date, period.StatusFiled)

	err := (&CreateTransaction{UserID: userID, Fields: officeSupplies(date, "10")}).Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, period.ErrPeriodLocked)
	tw.transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	tw := newTestWriter(t)
	fields := officeSupplies(day(2025, 1, 10), "10")
	fields.Category = "Yacht upkeep"

	err := (&CreateTransaction{UserID: uuid.Must(uuid.NewV4()), Fields: fields}).Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	tw.settings.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestCreateTransaction_LookupErrorPropagates(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	tw := newTestWriter(t)
	tw.expectFrequency(userID, period.FrequencyMonthly)
	tw.periods.EXPECT().Find(mock.Anything, userID, mock.Anything).Return(nil, errors.New("db down"))

	err := (&CreateTransaction{UserID: userID, Fields: officeSupplies(day(2025, 1, 10), "10")}).Perform(context.Background(), tw.writer)
	assert.ErrorContains(t, err, "db down")
	assert.NotErrorIs(t, err, period.ErrPeriodLocked)
}

// -- UpdateTransaction --

func TestUpdateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	oldDate := day(2025, 5, 2)
	newDate := day(2025, 7, 20)
	tw := newTestWriter(t)
	tw.transactions.EXPECT().FindByIDForUpdate(mock.Anything, userID, txID).
		Return(&sqlconfig.Transaction{ID: txID, UserID: userID, Date: oldDate}, nil)
	tw.expectFrequency(userID, period.FrequencyTwoMonthly)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, oldDate, period.StatusReadyToFile)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, newDate, "")

	updated := &sqlconfig.Transaction{ID: txID, Date: newDate}
	tw.transactions.EXPECT().Update(mock.Anything, txID, mock.MatchedBy(func(v *sqlconfig.TransactionValues) bool {
		return v.Date.Equal(newDate) && v.UserID == userID
	})).Return(updated, nil)

	action := &UpdateTransaction{UserID: userID, TransactionID: txID, Fields: officeSupplies(newDate, "50")}
	require.NoError(t, action.Perform(context.Background(), tw.writer))
	assert.Same(t, updated, action.Updated)
}

func TestUpdateTransaction_MoveIntoFiledPeriodBlocked(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	oldDate := day(2025, 5, 2)
	newDate := day(2025, 1, 20)
	tw := newTestWriter(t)
	tw.transactions.EXPECT().FindByIDForUpdate(mock.Anything, userID, txID).
		Return(&sqlconfig.Transaction{ID: txID, UserID: userID, Date: oldDate}, nil)
	tw.expectFrequency(userID, period.FrequencyTwoMonthly)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, oldDate, period.StatusOpen)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, newDate, period.StatusFiled)

	err := (&UpdateTransaction{UserID: userID, TransactionID: txID, Fields: officeSupplies(newDate, "50")}).
		Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, period.ErrPeriodLocked)
	tw.transactions.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTransaction_MoveOutOfFiledPeriodBlocked(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	oldDate := day(2025, 1, 20)
	tw := newTestWriter(t)
	tw.transactions.EXPECT().FindByIDForUpdate(mock.Anything, userID, txID).
		Return(&sqlconfig.Transaction{ID: txID, UserID: userID, Date: oldDate}, nil)
	tw.expectFrequency(userID, period.FrequencyTwoMonthly)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, oldDate, period.StatusFiled)

	err := (&UpdateTransaction{UserID: userID, TransactionID: txID, Fields: officeSupplies(day(2025, 5, 2), "50")}).
		Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, period.ErrPeriodLocked)
	tw.transactions.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	tw := newTestWriter(t)
	tw.transactions.EXPECT().FindByIDForUpdate(mock.Anything, userID, txID).Return(nil, nil)

	err := (&UpdateTransaction{UserID: userID, TransactionID: txID, Fields: officeSupplies(day(2025, 5, 2), "50")}).
		Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// -- DeleteTransaction --

func TestDeleteTransaction_SoftDeletes(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	date := day(2025, 9, 9)
	now := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	tw := newTestWriter(t)
	tw.transactions.EXPECT().FindByIDForUpdate(mock.Anything, userID, txID).
		Return(&sqlconfig.Transaction{ID: txID, Date: date}, nil)
	tw.expectFrequency(userID, period.FrequencySixMonthly)
	tw.expectPeriodStatus(userID, period.FrequencySixMonthly, date, period.StatusOpen)
	tw.transactions.EXPECT().SoftDelete(mock.Anything, userID, txID, now).Return(nil)

	require.NoError(t, (&DeleteTransaction{UserID: userID, TransactionID: txID, Now: now}).Perform(context.Background(), tw.writer))
}

func TestDeleteTransaction_FiledPeriodBlocked(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	date := day(2025, 9, 9)
	tw := newTestWriter(t)
	tw.transactions.EXPECT().FindByIDForUpdate(mock.Anything, userID, txID).
		Return(&sqlconfig.Transaction{ID: txID, Date: date}, nil)
	tw.expectFrequency(userID, period.FrequencyTwoMonthly)
	tw.expectPeriodStatus(userID, period.FrequencyTwoMonthly, date, period.StatusFiled)

	err := (&DeleteTransaction{UserID: userID, TransactionID: txID}).Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, period.ErrPeriodLocked)
	tw.transactions.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTransaction_AlreadyDeleted(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	tw := newTestWriter(t)
	tw.transactions.EXPECT().FindByIDForUpdate(mock.Anything, userID, txID).Return(nil, nil)

	err := (&DeleteTransaction{UserID: userID, TransactionID: txID}).Perform(context.Background(), tw.writer)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
