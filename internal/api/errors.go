package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/seobrief-api/internal/api/shared"
	"github.com/phrazzld/seobrief-api/internal/domain"
	"github.com/phrazzld/seobrief-api/internal/generation"
	"github.com/phrazzld/seobrief-api/internal/redact"
	"github.com/phrazzld/seobrief-api/internal/service"
)

// Error details returned when the model client could not be built.
const (
	BriefNotConfiguredDetail   = "Gemini model not configured. Ensure GEMINI_API_KEY is set in .env"
	ArticleNotConfiguredDetail = "Gemini model not configured."
)

// Prefixes of the error details for failed generations.
const (
	signatureErrorPrefix = "LLM SDK signature error: "
	briefErrorPrefix     = "LLM request failed: "
	articleErrorPrefix   = "Article generation failed: "
)

// MapErrorToStatusCode maps service errors to HTTP status codes. Invalid
// requests are 400; every generation failure is 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// BriefErrorDetail returns the client-facing detail for a failed brief.
// Every occurrence of secrets is removed along with the pattern based
// redactions.
func BriefErrorDetail(err error, secrets ...string) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return scrub(cause(err), secrets)
	case errors.Is(err, generation.ErrNotConfigured):
		return BriefNotConfiguredDetail
	case strategiesExhausted(err):
		return signatureErrorPrefix + scrub(cause(err), secrets)
	default:
		return briefErrorPrefix + scrub(cause(err), secrets)
	}
}

// ArticleErrorDetail returns the client-facing detail for a failed article.
func ArticleErrorDetail(err error, secrets ...string) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return scrub(cause(err), secrets)
	case errors.Is(err, generation.ErrNotConfigured):
		return ArticleNotConfiguredDetail
	default:
		return articleErrorPrefix + scrub(cause(err), secrets)
	}
}

func scrub(err error, secrets []string) string {
	if err == nil {
		return ""
	}
	return redact.Secrets(err.Error(), secrets...)
}

// HandleAPIError writes the error response for err using detail and logs
// the full redacted error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), detail, err)
}

func strategiesExhausted(err error) bool {
	var invErr *generation.InvocationError
	return errors.As(err, &invErr) && invErr.Kind == generation.KindSignatureMismatch
}

// cause strips the service's stage annotation, leaving the error a client
// can act on.
func cause(err error) error {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) && svcErr.Err != nil {
		return svcErr.Err
	}
	return err
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending field, e.g. "keyword is required".
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}
	fe := verrs[0]
	return fmt.Sprintf("%s %s", fe.Field(), validationTagMessage(fe.Tag()))
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
