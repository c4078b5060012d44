package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
	"github.com/carson-networks/gst-server/internal/storage/sqlconfig"
)

// RecentLimit caps the recent transaction lists.
const RecentLimit = 50

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
	now       func() time.Time
}

func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor, now: time.Now}
}

// ListRecent returns the newest transactions of the signed-in user.
func (s *TransactionService) ListRecent(ctx context.Context) ([]Transaction, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return nil, nil
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID: userID,
		Limit:  RecentLimit,
	})
	if err != nil {
		logrus.WithError(err).WithField("userID", userID).Error("TransactionService.ListRecent")
		return nil, err
	}
	return transactionsFromRows(rows), nil
}

// ListRange returns the user's transactions dated within r, newest first.
func (s *TransactionService) ListRange(ctx context.Context, r period.Range) ([]Transaction, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return nil, nil
	}
	return s.listRange(ctx, userID, r, false)
}

func (s *TransactionService) listRange(ctx context.Context, userID uuid.UUID, r period.Range, ascending bool) ([]Transaction, error) {
	from, to := r.Start, r.End
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:    userID,
		From:      &from,
		To:        &to,
		Ascending: ascending,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"userID": userID,
			"range":  r.Key(),
		}).Error("TransactionService.ListRange")
		return nil, err
	}
	return transactionsFromRows(rows), nil
}

// Get returns ErrTransactionNotFound for deleted rows and rows owned by
// another user.
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return nil, ErrTransactionNotFound
	}

	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrTransactionNotFound
	}
	tx := transactionFromRow(row)
	return &tx, nil
}

func (s *TransactionService) Create(ctx context.Context, input TransactionInput) (*Transaction, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{UserID: userID, Fields: input.fields()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	tx := transactionFromRow(action.Created)
	return &tx, nil
}

func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, input TransactionInput) (*Transaction, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{UserID: userID, TransactionID: id, Fields: input.fields()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	tx := transactionFromRow(action.Updated)
	return &tx, nil
}

// Delete soft deletes the transaction.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.DeleteTransaction{
		UserID:        userID,
		TransactionID: id,
		Now:           s.now().UTC(),
	})
}

// Dashboard summarizes r. A nil range uses the current month.
func (s *TransactionService) Dashboard(ctx context.Context, r *period.Range) (*Dashboard, error) {
	dateRange := period.Range{}
	if r != nil {
		dateRange = *r
	} else {
		var err error
		dateRange, err = period.PresetRange(period.PresetThisMonth, s.now())
		if err != nil {
			return nil, err
		}
	}

	dashboard := &Dashboard{
		Range:    dateRange,
		Summary:  gst.Summarize(nil),
		Spending: gst.SummarizeSpending(nil),
	}

	userID, ok := currentUser(ctx)
	if !ok {
		return dashboard, nil
	}

	transactions, err := s.listRange(ctx, userID, dateRange, false)
	if err != nil {
		return nil, err
	}

	dashboard.Summary = gst.Summarize(lines(transactions))
	dashboard.Spending = gst.SummarizeSpending(lines(transactions))
	dashboard.TransactionCount = len(transactions)
	dashboard.Recent = transactions
	if len(dashboard.Recent) > RecentLimit {
		dashboard.Recent = dashboard.Recent[:RecentLimit]
	}
	return dashboard, nil
}
