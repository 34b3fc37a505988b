package web

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ParseID extracts and validates the numeric id path parameter.
// Returns the ID and a boolean indicating success.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	pathValueID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(pathValueID, 10, 64)
	if err != nil || id <= 0 {
		RespondError(w, logger, http.StatusBadRequest, CodeInvalidID, "Invalid store ID")
		return 0, false
	}
	return id, true
}

// DecodeBody parses the request body into dst, enforcing that the payload is a
// non-empty JSON object. On failure it writes the appropriate error envelope
// and returns false.
func DecodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		RespondError(w, logger, http.StatusBadRequest, CodeInvalidRequest, "Unable to read request body")
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		RespondError(w, logger, http.StatusBadRequest, CodeInvalidRequest, "Request body cannot be empty")
		return false
	}
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		RespondError(w, logger, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON payload")
		return false
	}
	obj, ok := probe.(map[string]any)
	if !ok {
		RespondError(w, logger, http.StatusBadRequest, CodeInvalidRequest, "Request body must be a JSON object")
		return false
	}
	if len(obj) == 0 {
		RespondError(w, logger, http.StatusBadRequest, CodeInvalidRequest, "Request body cannot be empty")
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		RespondError(w, logger, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON payload")
		return false
	}
	return true
}
