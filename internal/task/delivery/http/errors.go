package http

import (
	"errors"
	"net/http"

	"checklist-sync/internal/task"
	pkgErrors "checklist-sync/pkg/errors"
)

var (
	errMissingID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidIndex = pkgErrors.NewHTTPError(http.StatusBadRequest, "item index must be a non-negative integer")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500 without leaking their message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrNotChecklist):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, task.ErrItemIndexOutOfRange),
		errors.Is(err, task.ErrEmptyLabel),
		errors.Is(err, task.ErrMultilineLabel),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPercent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
