package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	admindomain "github.com/edurank-nepal/api/internal/admin/domain"
	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Warn("encode response failed", zap.Error(err))
	}
}

// WriteError writes {"error": message}.
func WriteError(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, map[string]string{"error": message})
}

// WriteValidation writes a 400 with per-field messages.
func WriteValidation(logger *zap.Logger, w http.ResponseWriter, message string, fields map[string]string) {
	WriteJSON(logger, w, http.StatusBadRequest, map[string]any{"error": message, "fields": fields})
}

// WriteServiceError maps application errors to status codes. Unexpected
// errors are logged and reported as fallback.
func WriteServiceError(logger *zap.Logger, w http.ResponseWriter, err error, fallback string) {
	var invalid *publicdomain.ValidationError
	switch {
	case errors.As(err, &invalid):
		WriteValidation(logger, w, invalid.Message, map[string]string{invalid.Field: invalid.Message})
	case errors.Is(err, publicdomain.ErrNotFound):
		WriteError(logger, w, http.StatusNotFound, "not found")
	case errors.Is(err, admindomain.ErrInvalidTransition):
		WriteError(logger, w, http.StatusConflict, err.Error())
	default:
		if logger != nil {
			logger.Error(fallback, zap.Error(err))
		}
		WriteError(logger, w, http.StatusInternalServerError, fallback)
	}
}

// WriteDecodeError reports a DecodeJSON failure.
func WriteDecodeError(logger *zap.Logger, w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, ErrBodyTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	WriteError(logger, w, status, err.Error())
}
