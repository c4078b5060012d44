package httputil

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/bankimport"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
)

// ServiceError converts a service error into an API error. Errors without a
// known mapping become a 500 carrying fallback as the message.
func ServiceError(err error, fallback string) huma.StatusError {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return huma.NewError(http.StatusUnauthorized, "sign in required", err)
	case errors.Is(err, auth.ErrLinkInvalid):
		return huma.NewError(http.StatusUnauthorized, auth.ErrLinkInvalid.Error())
	case errors.Is(err, period.ErrPeriodLocked):
		return huma.NewError(http.StatusConflict, period.LockedMessage)
	case errors.Is(err, period.ErrInvalidTransition):
		return huma.NewError(http.StatusConflict, "invalid GST period status change", err)
	case errors.Is(err, service.ErrTransactionNotFound):
		return huma.NewError(http.StatusNotFound, "transaction not found")
	case errors.Is(err, service.ErrPeriodNotFound):
		return huma.NewError(http.StatusNotFound, "GST period not found")
	case errors.Is(err, service.ErrUnknownCategory):
		return huma.NewError(http.StatusBadRequest, "unknown category", err)
	case errors.Is(err, service.ErrInvalidEmail):
		return huma.NewError(http.StatusBadRequest, "invalid email address")
	case errors.Is(err, bankimport.ErrNoRows):
		return huma.NewError(http.StatusBadRequest, bankimport.ErrNoRows.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
