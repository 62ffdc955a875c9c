package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/seobrief-api/internal/api/shared"
	"github.com/phrazzld/seobrief-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	var ctxLogger *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		ctxLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	Trace(base)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, traceID)
	require.NotNil(t, ctxLogger)
	assert.Equal(t, traceID, w.Header().Get(TraceIDHeader))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request started", entry["msg"])
	assert.Equal(t, traceID, entry["trace_id"])
	assert.Equal(t, "/health", entry["path"])
}
