package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/seobrief-api/internal/generation"
	"google.golang.org/genai"
)

// StatusError is returned by the REST strategy for non-200 responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini REST API returned status %d: %s", e.Code, e.Body)
}

// apiFailure is the part of a Gemini error response used for classification.
type apiFailure struct {
	code    int
	status  string
	message string
	reasons []string
}

// Gemini reports these with HTTP 400 even though no other call shape can
// succeed: the key, the caller's location or the quota is at fault.
var (
	fatalReasons = map[string]bool{
		"API_KEY_INVALID":               true,
		"API_KEY_EXPIRED":               true,
		"API_KEY_SERVICE_BLOCKED":       true,
		"API_KEY_HTTP_REFERRER_BLOCKED": true,
		"API_KEY_IP_ADDRESS_BLOCKED":    true,
		"RATE_LIMIT_EXCEEDED":           true,
		"RESOURCE_EXHAUSTED":            true,
		"USER_LOCATION_INVALID":         true,
	}
	fatalStatuses = map[string]bool{
		"UNAUTHENTICATED":     true,
		"PERMISSION_DENIED":   true,
		"RESOURCE_EXHAUSTED":  true,
		"FAILED_PRECONDITION": true,
	}
	fatalMessages = []string{
		"api key not valid",
		"api key expired",
		"user location is not supported",
		"quota",
	}
)

// classify marks errors caused by a rejected request shape as
// generation.ErrSignatureMismatch and returns every other error unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if f, ok := describe(err); ok && isShapeRejection(f) {
		return fmt.Errorf("%w: %w", generation.ErrSignatureMismatch, err)
	}
	return err
}

// isShapeRejection reports whether a failure means the request itself was
// not acceptable (bad argument, unknown model or method) rather than the
// call failing for a reason every strategy would hit.
func isShapeRejection(f apiFailure) bool {
	if f.code != http.StatusBadRequest && f.code != http.StatusNotFound {
		return false
	}
	if fatalStatuses[f.status] {
		return false
	}
	for _, r := range f.reasons {
		if fatalReasons[r] {
			return false
		}
	}
	msg := strings.ToLower(f.message)
	for _, m := range fatalMessages {
		if strings.Contains(msg, m) {
			return false
		}
	}
	return true
}

func describe(err error) (apiFailure, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fromAPIError(apiErr), true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return fromAPIError(*apiErrPtr), true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fromStatusError(statusErr), true
	}
	return apiFailure{}, false
}

func fromAPIError(e genai.APIError) apiFailure {
	return apiFailure{
		code:    e.Code,
		status:  e.Status,
		message: e.Message,
		reasons: detailReasons(e.Details),
	}
}

// fromStatusError reads the standard Google error envelope from a REST
// error body. A body that is not JSON is kept as the message.
func fromStatusError(e *StatusError) apiFailure {
	f := apiFailure{code: e.Code, message: e.Body}
	var envelope struct {
		Error genai.APIError `json:"error"`
	}
	if err := json.Unmarshal([]byte(e.Body), &envelope); err == nil {
		f.status = envelope.Error.Status
		f.reasons = detailReasons(envelope.Error.Details)
		if envelope.Error.Message != "" {
			f.message = envelope.Error.Message
		}
	}
	return f
}

func detailReasons(details []map[string]any) []string {
	var reasons []string
	for _, d := range details {
		if r, ok := d["reason"].(string); ok && r != "" {
			reasons = append(reasons, r)
		}
	}
	return reasons
}

func statusCode(err error) (int, bool) {
	f, ok := describe(err)
	return f.code, ok
}
