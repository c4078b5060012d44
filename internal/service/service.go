package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/storage"
)

var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrTransactionNotFound = actions.ErrTransactionNotFound
	ErrPeriodNotFound      = actions.ErrPeriodNotFound
	ErrUnknownCategory     = actions.ErrUnknownCategory
)

// ActionProcessor runs a write action in its own database transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Period      *PeriodService
	Settings    *SettingsService
	Import      *ImportService
	Export      *ExportService
	Auth        *AuthService
}

// NewService creates a new Service with the given storage and write path.
func NewService(store *storage.Storage, processor ActionProcessor, authService *AuthService) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Period:      NewPeriodService(store, processor),
		Settings:    NewSettingsService(store, processor),
		Import:      NewImportService(processor),
		Export:      NewExportService(store),
		Auth:        authService,
	}
}

// currentUser returns the signed-in user. Reads treat a missing user as an
// empty result, writes as ErrNotAuthenticated.
func currentUser(ctx context.Context) (uuid.UUID, bool) {
	return auth.UserIDFromContext(ctx)
}

func requireUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return uuid.Nil, ErrNotAuthenticated
	}
	return userID, nil
}
