package http

import (
	"errors"
	"net/http"

	"event-announcer/internal/event"
	pkgErrors "event-announcer/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, event.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrProvider):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, event.ErrTransientIO):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
