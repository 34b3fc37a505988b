// Package web provides shared HTTP plumbing: the response envelope,
// middleware and request parsing helpers.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Error codes used across the API surface.
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Meta is attached to every response. RequestID is a fresh opaque token
// generated per response, not the transport-level request id.
type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
	Meta   Meta   `json:"meta"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Status string    `json:"status"`
	Error  errorBody `json:"error"`
	Meta   Meta      `json:"meta"`
}

func newMeta() Meta {
	return Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: uuid.NewString(),
	}
}

// RespondSuccess writes a success envelope with the given payload.
// A 204 status writes no body at all.
func RespondSuccess(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, logger, status, successEnvelope{
		Status: "success",
		Data:   data,
		Meta:   newMeta(),
	})
}

// RespondError writes an error envelope with the given code and message.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	RespondErrorDetails(w, logger, status, code, message, nil)
}

// RespondErrorDetails writes an error envelope carrying optional diagnostic details.
func RespondErrorDetails(w http.ResponseWriter, logger *slog.Logger, status int, code, message string, details any) {
	writeJSON(w, logger, status, errorEnvelope{
		Status: "error",
		Error:  errorBody{Code: code, Message: message, Details: details},
		Meta:   newMeta(),
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}
