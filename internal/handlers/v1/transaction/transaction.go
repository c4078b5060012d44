package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/handlers/v1/httputil"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           string  `json:"id" doc:"Transaction UUID"`
	Date         string  `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Category     string  `json:"category" doc:"Category name"`
	Description  string  `json:"description" doc:"Free text description"`
	Amount       string  `json:"amount" doc:"Non-negative decimal amount including GST"`
	GSTIncluded  bool    `json:"gstIncluded" doc:"Whether the amount includes GST"`
	GSTClaimable string  `json:"gstClaimable" doc:"GST claimable on an expense"`
	Type         string  `json:"type" enum:"income,expense" doc:"Transaction type"`
	ReceiptURL   *string `json:"receiptURL,omitempty" doc:"Link to the stored receipt"`
	Source       string  `json:"source" enum:"manual,bank_import" doc:"How the transaction was recorded"`
	CreatedAt    string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func toTransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID.String(),
		Date:         tx.Date.Format(period.DateLayout),
		Category:     tx.Category,
		Description:  tx.Description,
		Amount:       tx.Amount.StringFixed(2),
		GSTIncluded:  tx.GSTIncluded,
		GSTClaimable: tx.GSTClaimable.StringFixed(2),
		Type:         string(tx.Type),
		ReceiptURL:   tx.ReceiptURL,
		Source:       tx.Source,
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
}

// ToTransactions converts service transactions for a response body.
func ToTransactions(txs []service.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = toTransaction(tx)
	}
	return out
}

// TransactionBody is the request body for creating and updating a transaction.
type TransactionBody struct {
	Date        string  `json:"date" required:"true" doc:"Transaction date, YYYY-MM-DD"`
	Category    string  `json:"category" required:"true" minLength:"1" doc:"Category name from GET /v1/categories"`
	Description string  `json:"description,omitempty" maxLength:"500" doc:"Free text description"`
	Amount      string  `json:"amount" required:"true" doc:"Decimal amount, the sign is ignored"`
	GSTIncluded *bool   `json:"gstIncluded,omitempty" doc:"Defaults to the category default"`
	Type        string  `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	ReceiptURL  *string `json:"receiptURL,omitempty" doc:"Link to the stored receipt"`
}

// parseTransactionBody parses and validates the API input.
func parseTransactionBody(body TransactionBody) (service.TransactionInput, error) {
	date, err := httputil.ParseDate("date", body.Date)
	if err != nil {
		return service.TransactionInput{}, err
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	gstIncluded := gst.DefaultGSTIncluded(body.Category)
	if body.GSTIncluded != nil {
		gstIncluded = *body.GSTIncluded
	}

	var receiptURL *string
	if body.ReceiptURL != nil && *body.ReceiptURL != "" {
		receiptURL = body.ReceiptURL
	}

	return service.TransactionInput{
		Date:        date,
		Category:    body.Category,
		Description: body.Description,
		Amount:      amount,
		GSTIncluded: gstIncluded,
		Type:        gst.ParseTransactionType(body.Type),
		ReceiptURL:  receiptURL,
	}, nil
}
