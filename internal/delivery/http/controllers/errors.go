package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"symposiumadmin/internal/delivery/http/helpers"
	"symposiumadmin/internal/domain"
)

// writeServiceError maps domain sentinel errors onto the HTTP taxonomy.
// Unrecognized errors become a 500; their detail is logged server-side only.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidState):
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotCheckedIn):
		helpers.WriteError(w, http.StatusForbidden, "user not checked in")
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		helpers.WriteError(w, http.StatusConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
