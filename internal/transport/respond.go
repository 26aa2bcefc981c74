package transport

import (
	"encoding/json"
	"net/http"

	"paytrack-be/internal/logger"

	"go.uber.org/zap"
)

// ErrorResponse is the structured error body every handler returns: a stable
// machine-readable kind plus a human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func Error(w http.ResponseWriter, status int, kind, message string) {
	JSON(w, status, ErrorResponse{Error: kind, Message: message})
}
