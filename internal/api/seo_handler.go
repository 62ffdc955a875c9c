package api

import (
	"net/http"

	"github.com/phrazzld/seobrief-api/internal/api/shared"
	"github.com/phrazzld/seobrief-api/internal/domain"
	"github.com/phrazzld/seobrief-api/internal/platform/logger"
	"github.com/phrazzld/seobrief-api/internal/service"
)

// SEOHandler handles the brief and article endpoints.
type SEOHandler struct {
	seoService service.SEOService
	// secrets are removed verbatim from every error detail.
	secrets []string
}

// NewSEOHandler creates a new SEOHandler. secrets, typically the Gemini API
// key, never appear in a response.
func NewSEOHandler(seoService service.SEOService, secrets ...string) *SEOHandler {
	return &SEOHandler{seoService: seoService, secrets: secrets}
}

// CreateBrief handles POST /api/brief requests.
func (h *SEOHandler) CreateBrief(w http.ResponseWriter, r *http.Request) {
	var req BriefRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	log := logger.FromContextOrDefault(r.Context(), nil)
	log.InfoContext(r.Context(), "generating brief", "keyword_length", len(req.Keyword))

	brief, err := h.seoService.GenerateBrief(r.Context(), req.Keyword)
	if err != nil {
		HandleAPIError(w, r, err, BriefErrorDetail(err, h.secrets...))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, brief)
}

// CreateArticle handles POST /api/article requests.
func (h *SEOHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	log := logger.FromContextOrDefault(r.Context(), nil)
	log.InfoContext(r.Context(), "generating article",
		"keyword_length", len(req.Keyword),
		"brief_fields", len(req.Brief))

	article, err := h.seoService.GenerateArticle(r.Context(), req.Keyword, domain.Brief(req.Brief))
	if err != nil {
		HandleAPIError(w, r, err, ArticleErrorDetail(err, h.secrets...))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

// decodeAndValidate decodes the body into req and validates it, writing a
// 400 response and returning false on failure.
func (h *SEOHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, scrub(err, h.secrets), err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
