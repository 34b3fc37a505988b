package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMeta(t *testing.T, body []byte) Meta {
	t.Helper()
	var env struct {
		Meta Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return env.Meta
}

func Test_RespondSuccess(t *testing.T) {
	t.Run("wraps the payload", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondSuccess(rr, discardLogger(), http.StatusOK, map[string]string{"name": "Tech Store"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var env struct {
			Status string            `json:"status"`
			Data   map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, "success", env.Status)
		assert.Equal(t, "Tech Store", env.Data["name"])

		meta := decodeMeta(t, rr.Body.Bytes())
		assert.NotEmpty(t, meta.RequestID)
		_, err := time.Parse(time.RFC3339, meta.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("204 writes no body", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondSuccess(rr, discardLogger(), http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("request ids are fresh per response", func(t *testing.T) {
		first := httptest.NewRecorder()
		second := httptest.NewRecorder()

		RespondSuccess(first, discardLogger(), http.StatusOK, nil)
		RespondSuccess(second, discardLogger(), http.StatusOK, nil)

		assert.NotEqual(t,
			decodeMeta(t, first.Body.Bytes()).RequestID,
			decodeMeta(t, second.Body.Bytes()).RequestID,
		)
	})
}

func Test_RespondError(t *testing.T) {
	t.Run("details are omitted when absent", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondError(rr, discardLogger(), http.StatusBadRequest, CodeValidationError, "Store name is required")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.NotContains(t, string(raw["error"]), "details")

		var env struct {
			Status string `json:"status"`
			Error  struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, CodeValidationError, env.Error.Code)
		assert.Equal(t, "Store name is required", env.Error.Message)
	})

	t.Run("details are carried when present", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondErrorDetails(rr, discardLogger(), http.StatusBadRequest, CodeValidationError, "Invalid email format",
			map[string]string{"technical": "mail: missing @ in addr-spec"})

		var env struct {
			Error struct {
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, "mail: missing @ in addr-spec", env.Error.Details["technical"])
	})
}
