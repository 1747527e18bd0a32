package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"flashdeck/internal/contextutil"
	"flashdeck/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps service errors to an HTTP status code and a message
// safe to show to clients.
func statusForError(err error, defaultMsg string) (int, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error())
	}
	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, "Invalid input"
	}
	if errors.Is(err, service.ErrNotFound) {
		return http.StatusNotFound, "Resource not found"
	}
	if errors.Is(err, service.ErrExternalService) {
		return http.StatusBadGateway, "External service error"
	}
	return http.StatusInternalServerError, defaultMsg
}

// handleServiceError writes a JSON error response for a service error.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	status, msg := statusForError(err, defaultMsg)
	writeError(w, status, msg)
}

// handlePageError writes a plain-text error response for a service error.
func handlePageError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	status, msg := statusForError(err, defaultMsg)
	http.Error(w, msg, status)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
