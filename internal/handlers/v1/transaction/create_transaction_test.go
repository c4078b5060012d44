package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

func boolPtr(b bool) *bool { return &b }

// -- parseTransactionBody unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseTransactionBody_ValidInput(t *testing.T) {
	receipt := "https://receipts.example/1.pdf"
	input, err := parseTransactionBody(TransactionBody{
		Date:        "2025-03-02",
		Category:    "Internet",
		Description: "Fibre",
		Amount:      "-115.00",
		GSTIncluded: boolPtr(false),
		Type:        "expense",
		ReceiptURL:  &receipt,
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), input.Date)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("-115")))
	assert.False(t, input.GSTIncluded)
	assert.Equal(t, gst.TransactionTypeExpense, input.Type)
	assert.Equal(t, &receipt, input.ReceiptURL)
}

func TestParseTransactionBody_DefaultsGSTIncludedFromCategory(t *testing.T) {
	input, err := parseTransactionBody(TransactionBody{
		Date:     "2025-03-02",
		Category: "Pay to IRD",
		Amount:   "500",
		Type:     "expense",
	})

	require.NoError(t, err)
	assert.False(t, input.GSTIncluded)
	assert.Nil(t, input.ReceiptURL)
}

func TestParseTransactionBody_InvalidDate(t *testing.T) {
	_, err := parseTransactionBody(TransactionBody{Date: "02/03/2025", Category: "Internet", Amount: "1", Type: "expense"})
	assert.Error(t, err)
}

func TestParseTransactionBody_InvalidAmount(t *testing.T) {
	_, err := parseTransactionBody(TransactionBody{Date: "2025-03-02", Category: "Internet", Amount: "abc", Type: "expense"})
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	created := sampleTransaction()
	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Category == "Internet" &&
			in.Amount.Equal(decimal.RequireFromString("115")) &&
			in.GSTIncluded &&
			in.Type == gst.TransactionTypeExpense
	})).Return(created, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		Date:     "2025-03-02",
		Category: "Internet",
		Amount:   "115.00",
		Type:     "expense",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, "2025-03-02", body.Date)
	assert.Equal(t, "15.00", body.GSTClaimable)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", map[string]any{
		"date": "2025-03-02",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		Date:     "2025-03-02",
		Category: "Internet",
		Amount:   "1",
		Type:     "transfer",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_PeriodLocked(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, period.ErrPeriodLocked)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		Date:     "2025-01-10",
		Category: "Internet",
		Amount:   "1",
		Type:     "expense",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "This GST period has been filed")
}

func TestHTTP_CreateTransaction_NotSignedIn(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrNotAuthenticated)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		Date:     "2025-03-02",
		Category: "Internet",
		Amount:   "1",
		Type:     "expense",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		Date:     "2025-03-02",
		Category: "Internet",
		Amount:   "1",
		Type:     "expense",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
