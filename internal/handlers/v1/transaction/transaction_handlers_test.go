package transaction

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

// -- update --

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	updated := sampleTransaction()
	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, updated.ID, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Description == "Fibre"
	})).Return(updated, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/transaction/"+updated.ID.String(), TransactionBody{
		Date:        "2025-03-02",
		Category:    "Internet",
		Description: "Fibre",
		Amount:      "115",
		Type:        "expense",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_InvalidID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Put("/v1/transaction/not-a-uuid", TransactionBody{
		Date: "2025-03-02", Category: "Internet", Amount: "1", Type: "expense",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrTransactionNotFound)

	resp := newTestAPI(t, mockSvc).Put("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(), TransactionBody{
		Date: "2025-03-02", Category: "Internet", Amount: "1", Type: "expense",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- delete --

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("Delete", mock.Anything, id).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_Locked(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Delete", mock.Anything, mock.Anything).Return(period.ErrPeriodLocked)

	resp := newTestAPI(t, mockSvc).Delete("/v1/transaction/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusConflict, resp.Code)
}

// -- get --

func TestHTTP_GetTransaction(t *testing.T) {
	tx := sampleTransaction()
	receipt := "https://receipts.example/1.pdf"
	tx.ReceiptURL = &receipt
	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, tx.ID).Return(tx, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions/" + tx.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.ReceiptURL)
	assert.Equal(t, receipt, *body.ReceiptURL)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, mock.Anything).Return(nil, service.ErrTransactionNotFound)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- list --

func TestHTTP_ListTransactions_Recent(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListRecent", mock.Anything).Return([]service.Transaction{*sampleTransaction()}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	mockSvc.AssertNotCalled(t, "ListRange", mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_Range(t *testing.T) {
	expected := period.Range{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	}
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListRange", mock.Anything, expected).Return(nil, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions?from=2025-01-01&to=2025-02-28")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_HalfRange(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions?from=2025-01-01")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// -- dashboard --

func TestHTTP_Dashboard_Preset(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Dashboard", mock.Anything, mock.MatchedBy(func(r *period.Range) bool {
		return r != nil &&
			r.Start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			r.End.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	})).Return(&service.Dashboard{
		Range: period.Range{
			Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		Summary:          gst.Summarize(nil),
		Spending:         gst.SummarizeSpending(nil),
		TransactionCount: 0,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/dashboard?preset=last_2_months")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DashboardResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-01-01", body.From)
	assert.Equal(t, "0.00", body.Summary.NetGST)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Dashboard_Default(t *testing.T) {
	summary := gst.Summarize([]gst.Line{{
		Category:    "Design consulting income",
		Amount:      decimal.RequireFromString("230"),
		GSTIncluded: true,
		Type:        gst.TransactionTypeIncome,
	}})
	mockSvc := new(mockTransactionService)
	mockSvc.On("Dashboard", mock.Anything, (*period.Range)(nil)).Return(&service.Dashboard{
		Range:            period.Range{Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		Summary:          summary,
		Spending:         gst.SummarizeSpending(nil),
		TransactionCount: 1,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DashboardResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "30.00", body.Summary.GSTOnSales)
	assert.Equal(t, "30.00", body.Summary.NetGST)
	assert.Equal(t, 1, body.TransactionCount)
}
