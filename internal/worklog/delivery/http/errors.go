package http

import (
	"errors"
	"net/http"

	"voice-worklog/internal/worklog"
	pkgErrors "voice-worklog/pkg/errors"
)

var (
	errEmptyUtterance   = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errProjectRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "project is required")
	errProjectNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "project not configured for user")
	errTicketRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "ticket is required")
	errDurationRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "duration must be positive")
	errDescription      = pkgErrors.NewHTTPError(http.StatusBadRequest, "description is required")
	errWorklogRef       = pkgErrors.NewHTTPError(http.StatusBadRequest, "ticket key and worklog id are required")
)

// mapError translates use-case errors into HTTP errors. Anything unknown is
// an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, worklog.ErrEmptyUtterance):
		return errEmptyUtterance
	case errors.Is(err, worklog.ErrProjectRequired):
		return errProjectRequired
	case errors.Is(err, worklog.ErrProjectNotFound):
		return errProjectNotFound
	case errors.Is(err, worklog.ErrTicketRequired):
		return errTicketRequired
	case errors.Is(err, worklog.ErrDurationRequired):
		return errDurationRequired
	case errors.Is(err, worklog.ErrDescriptionRequired):
		return errDescription
	case errors.Is(err, worklog.ErrWorklogRefRequired):
		return errWorklogRef
	default:
		return pkgErrors.ErrInternalServerError
	}
}
