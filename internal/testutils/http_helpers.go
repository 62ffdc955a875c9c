package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/seobrief-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// PostJSON sends body to url with a JSON content type and returns the
// response together with its fully read body.
func PostJSON(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err, "POST %s", url)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp, data
}

// AssertErrorResponse checks that body is an error response with the
// expected status code, a detail containing expectedDetailPart, and a trace ID.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	body []byte,
	expectedStatus int,
	expectedDetailPart string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp),
		"Failed to unmarshal error response: %s", string(body))

	assert.Contains(t, errResp.Detail, expectedDetailPart,
		"Error detail should contain %q", expectedDetailPart)
	assert.NotEmpty(t, errResp.TraceID, "Error response should carry a trace ID")
	return errResp
}
