package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

func TestServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not authenticated", service.ErrNotAuthenticated, http.StatusUnauthorized},
		{"link", auth.ErrLinkInvalid, http.StatusUnauthorized},
		{"locked", fmt.Errorf("checking: %w", period.ErrPeriodLocked), http.StatusConflict},
		{"transition", period.ErrInvalidTransition, http.StatusConflict},
		{"transaction", service.ErrTransactionNotFound, http.StatusNotFound},
		{"period", service.ErrPeriodNotFound, http.StatusNotFound},
		{"category", service.ErrUnknownCategory, http.StatusBadRequest},
		{"other", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, ServiceError(tc.err, "failed").GetStatus())
		})
	}
}

func TestServiceError_LockedMessage(t *testing.T) {
	err := ServiceError(period.ErrPeriodLocked, "failed")

	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model))
	assert.Equal(t, period.LockedMessage, model.Detail)
}

func TestParseOptionalRange(t *testing.T) {
	r, err := ParseOptionalRange("", "")
	assert.NoError(t, err)
	assert.Nil(t, r)

	_, err = ParseOptionalRange("2025-01-01", "")
	assert.Error(t, err)

	_, err = ParseOptionalRange("2025-02-01", "2025-01-01")
	assert.Error(t, err)

	r, err = ParseOptionalRange("2025-01-01", "2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), r.End)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("date", "14/03/2025")

	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model))
	assert.Equal(t, http.StatusBadRequest, model.Status)
	assert.Equal(t, "invalid date", model.Detail)
}
