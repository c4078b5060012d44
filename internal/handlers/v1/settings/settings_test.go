package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

type mockSettingsService struct {
	mock.Mock
}

func (m *mockSettingsService) Get(ctx context.Context) (*service.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Settings), args.Error(1)
}

func (m *mockSettingsService) SetFrequency(ctx context.Context, frequency period.Frequency) (*service.Settings, error) {
	args := m.Called(ctx, frequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Settings), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockSettingsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_GetSettings(t *testing.T) {
	mockSvc := new(mockSettingsService)
	mockSvc.On("Get", mock.Anything).Return(&service.Settings{GSTFrequency: period.FrequencyTwoMonthly}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/settings")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Settings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "two-monthly", body.GSTFrequency)
}

func TestHTTP_SaveSettings(t *testing.T) {
	mockSvc := new(mockSettingsService)
	mockSvc.On("SetFrequency", mock.Anything, period.FrequencySixMonthly).
		Return(&service.Settings{GSTFrequency: period.FrequencySixMonthly}, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/settings", Settings{GSTFrequency: "six-monthly"})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SaveSettings_UnknownFrequency(t *testing.T) {
	mockSvc := new(mockSettingsService)

	resp := newTestAPI(t, mockSvc).Put("/v1/settings", Settings{GSTFrequency: "yearly"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "SetFrequency", mock.Anything, mock.Anything)
}

func TestHTTP_SaveSettings_NotSignedIn(t *testing.T) {
	mockSvc := new(mockSettingsService)
	mockSvc.On("SetFrequency", mock.Anything, mock.Anything).Return(nil, service.ErrNotAuthenticated)

	resp := newTestAPI(t, mockSvc).Put("/v1/settings", Settings{GSTFrequency: "monthly"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
