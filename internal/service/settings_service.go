package service

import (
	"context"

	"github.com/carson-networks/gst-server/internal/operator/actions"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
)

type Settings struct {
	GSTFrequency period.Frequency
}

type SettingsService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewSettingsService(store *storage.Storage, processor ActionProcessor) *SettingsService {
	return &SettingsService{storage: store, processor: processor}
}

// Get returns the user's settings, storing the defaults on first access.
// Anonymous callers get the defaults.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return &Settings{GSTFrequency: period.DefaultFrequency}, nil
	}

	frequency, err := storage.LoadFrequency(ctx, s.storage.Settings, userID)
	if err != nil {
		return nil, err
	}
	return &Settings{GSTFrequency: frequency}, nil
}

func (s *SettingsService) SetFrequency(ctx context.Context, frequency period.Frequency) (*Settings, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.SaveSettings{UserID: userID, Frequency: frequency}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return &Settings{GSTFrequency: action.Saved.GSTFrequency}, nil
}
