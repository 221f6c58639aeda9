package http

import (
	"errors"
	"net/http"

	"text-to-calendar/internal/event"
	pkgErrors "text-to-calendar/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	case errors.Is(err, event.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is too long")
	case errors.Is(err, event.ErrUnreadableResponse):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "could not understand the response")
	case errors.Is(err, event.ErrNeedStartDate):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "event has no valid start date")
	case errors.Is(err, event.ErrLLMFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "language model is unavailable")
	case errors.Is(err, event.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "google calendar is not configured")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// errorMessage returns the client-facing message of a mapped error.
func errorMessage(err error) string {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}
