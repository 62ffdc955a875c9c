package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/seobrief-api/internal/domain"
	"github.com/phrazzld/seobrief-api/internal/extract"
	"github.com/phrazzld/seobrief-api/internal/platform/logger"
)

// Generator submits a prompt to the language model and returns its raw
// response. generation.Model satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (interface{}, error)
}

// PromptBuilder renders the brief and article prompts. *prompt.Builder
// satisfies it.
type PromptBuilder interface {
	Brief(keyword string) (string, error)
	Article(keyword string, brief map[string]interface{}) (string, error)
}

// SEOService generates SEO briefs and articles.
type SEOService interface {
	// GenerateBrief asks the model for a content brief for keyword and
	// returns the JSON object recovered from its answer.
	GenerateBrief(ctx context.Context, keyword string) (domain.Brief, error)

	// GenerateArticle asks the model for a markdown article following brief
	// and returns the text exactly as extracted.
	GenerateArticle(ctx context.Context, keyword string, brief domain.Brief) (string, error)
}

type seoServiceImpl struct {
	model        Generator
	articleModel Generator
	prompts      PromptBuilder
	logger       *slog.Logger
}

// Option customises NewSEOService.
type Option func(*seoServiceImpl)

// WithArticleModel generates articles with m instead of the brief model.
// Articles need their own generation config: they are far longer than a
// brief.
func WithArticleModel(m Generator) Option {
	return func(s *seoServiceImpl) {
		if m != nil {
			s.articleModel = m
		}
	}
}

// NewSEOService creates an SEOService. model and prompts are required; a nil
// logger falls back to slog.Default().
func NewSEOService(model Generator, prompts PromptBuilder, log *slog.Logger, opts ...Option) (SEOService, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: model", ErrNilDependency)
	}
	if prompts == nil {
		return nil, fmt.Errorf("%w: prompt builder", ErrNilDependency)
	}
	if log == nil {
		log = slog.Default()
	}

	s := &seoServiceImpl{
		model:        model,
		articleModel: model,
		prompts:      prompts,
		logger:       log.With("component", "seo_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *seoServiceImpl) GenerateBrief(ctx context.Context, keyword string) (domain.Brief, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateKeyword(keyword); err != nil {
		return nil, newBriefError(StageValidate, err)
	}

	prompt, err := s.prompts.Brief(keyword)
	if err != nil {
		log.ErrorContext(ctx, "failed to build brief prompt", "error", err)
		return nil, newBriefError(StagePrompt, err)
	}

	raw, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return nil, newBriefError(StageInvoke, err)
	}

	text, err := extract.Text(raw)
	if err != nil {
		log.ErrorContext(ctx, "model response carried no text", "error", err)
		return nil, newBriefError(StageExtract, err)
	}
	log.DebugContext(ctx, "extracted brief text", "length", len(text))

	obj, err := extract.JSONObject(text)
	if err != nil {
		log.ErrorContext(ctx, "failed to recover brief JSON", "error", err, "length", len(text))
		return nil, newBriefError(StageRecover, err)
	}

	brief := domain.Brief(obj)
	if missing := brief.MissingFields(); len(missing) > 0 {
		log.WarnContext(ctx, "brief is missing expected fields", "missing", missing)
	}
	log.InfoContext(ctx, "brief generated", "fields", len(brief))
	return brief, nil
}

func (s *seoServiceImpl) GenerateArticle(
	ctx context.Context,
	keyword string,
	brief domain.Brief,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateKeyword(keyword); err != nil {
		return "", newArticleError(StageValidate, err)
	}
	if err := domain.ValidateBrief(brief); err != nil {
		return "", newArticleError(StageValidate, err)
	}

	prompt, err := s.prompts.Article(keyword, brief)
	if err != nil {
		log.ErrorContext(ctx, "failed to build article prompt", "error", err)
		return "", newArticleError(StagePrompt, err)
	}

	raw, err := s.articleModel.Generate(ctx, prompt)
	if err != nil {
		return "", newArticleError(StageInvoke, err)
	}

	text, err := extract.Text(raw)
	if err != nil {
		log.ErrorContext(ctx, "model response carried no text", "error", err)
		return "", newArticleError(StageExtract, err)
	}

	log.InfoContext(ctx, "article generated", "length", len(text))
	return text, nil
}
