package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/seobrief-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "map response",
			status:       http.StatusOK,
			data:         map[string]interface{}{"title": "x"},
			expectedBody: `{"title":"x"}`,
		},
		{
			name:         "html is not escaped",
			status:       http.StatusOK,
			data:         map[string]string{"article": "<p>a & b</p>"},
			expectedBody: `{"article":"<p>a & b</p>"}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/brief", nil)
	req = req.WithContext(WithTraceID(req.Context(), "abc"))
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "keyword is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"keyword is required","trace_id":"abc"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
		expectLogged  bool
	}{
		{name: "server error logged at error", status: http.StatusInternalServerError, expectedLevel: "ERROR", expectLogged: true},
		{name: "client error logged at debug", status: http.StatusBadRequest, expectedLevel: "DEBUG", expectLogged: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			ctx := logger.WithLogger(WithTraceID(context.Background(), "trace-1"), log)
			req := httptest.NewRequest(http.MethodPost, "/api/brief", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			err := errors.New("request to https://generativelanguage.googleapis.com/v1beta failed")
			RespondWithErrorAndLog(w, req, tc.status, "LLM request failed", err)

			assert.Equal(t, tc.status, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "LLM request failed", resp.Detail)
			assert.Equal(t, "trace-1", resp.TraceID)

			if !tc.expectLogged {
				assert.Empty(t, buf.String())
				return
			}
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.expectedLevel, entry["level"])
			assert.Equal(t, "trace-1", entry["trace_id"])
			assert.NotContains(t, entry["error"], "googleapis.com")
			assert.Equal(t, "*errors.errorString", entry["error_type"])
		})
	}
}
