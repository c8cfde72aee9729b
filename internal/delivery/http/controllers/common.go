package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

// pathID parses the named path value as a positive int64 ID. On failure it
// writes a 400 JSON error and returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// writeServiceError maps a service error to the API error envelope:
// not found -> 404, validation -> 400, conflict -> 409, unauthorized -> 401,
// deadline exceeded -> 408. Anything else is logged and returned as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case domain.IsNotFound(err):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case domain.IsValidation(err):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case domain.IsConflict(err):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case domain.IsUnauthorized(err):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		helpers.WriteJSONError(w, http.StatusRequestTimeout, helpers.ErrCodeTimeout, "request timed out")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// StatusResponse is the data payload for delete-style endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}
