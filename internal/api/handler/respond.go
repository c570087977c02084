package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"membership/internal/core/apperr"

	"go.uber.org/zap"
)

// writeJSON writes a JSON response with status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps an error to its HTTP response. Store failures and
// anything unrecognized become an opaque 500; the cause is logged, never
// sent to the caller.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err))
		}
		writeJSON(w, appErr.Status, map[string]string{"message": appErr.Message})
		return
	}

	logger.Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}
