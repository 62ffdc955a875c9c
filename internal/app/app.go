package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/seobrief-api/internal/config"
	"github.com/phrazzld/seobrief-api/internal/generation"
	"github.com/phrazzld/seobrief-api/internal/platform/gemini"
	"github.com/phrazzld/seobrief-api/internal/prompt"
	"github.com/phrazzld/seobrief-api/internal/redact"
	"github.com/phrazzld/seobrief-api/internal/service"
)

// Application holds the shared dependencies of one running service.
type Application struct {
	config       *config.Config
	logger       *slog.Logger
	briefModel   generation.Model
	articleModel generation.Model
	seoService   service.SEOService
}

// Option customises New.
type Option func(*options)

type options struct {
	model *generation.Model
}

// WithModel uses m for briefs and articles instead of building a Gemini
// client from configuration.
func WithModel(m generation.Model) Option {
	return func(o *options) {
		o.model = &m
	}
}

// New creates an Application with all dependencies initialized.
//
// A missing API key or a Gemini client that cannot be built does not fail
// startup: the application runs with an unconfigured model and every
// generation request reports it. An unreadable prompt template override
// does fail startup.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	app := &Application{
		config: cfg,
		logger: logger,
	}

	if o.model != nil {
		app.briefModel, app.articleModel = *o.model, *o.model
	} else {
		app.briefModel, app.articleModel = newModels(ctx, cfg.LLM, logger)
	}

	prompts, err := prompt.NewBuilderFromFiles(cfg.LLM.BriefPromptPath, cfg.LLM.ArticlePromptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	app.seoService, err = service.NewSEOService(app.briefModel, prompts, logger,
		service.WithArticleModel(app.articleModel))
	if err != nil {
		return nil, fmt.Errorf("failed to create SEO service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"model_configured", app.briefModel.IsConfigured())
	return app, nil
}

// newModels builds the Gemini-backed brief and article models, or
// unconfigured models that remember why they could not be built.
func newModels(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (brief, article generation.Model) {
	if !cfg.Configured() {
		logger.Warn("GEMINI_API_KEY is not set; generation endpoints will fail until it is configured")
		return generation.Unconfigured(nil), generation.Unconfigured(nil)
	}

	client, err := gemini.NewClient(ctx, logger.With("component", "llm_client"), cfg)
	if err != nil {
		logger.Error("failed to initialize Gemini client",
			"error", redact.Secret(err.Error(), cfg.GeminiAPIKey))
		return generation.Unconfigured(err), generation.Unconfigured(err)
	}

	inv := client.Invoker()
	logger.Info("Gemini client initialized",
		"model", cfg.ModelName,
		"fallback_model", cfg.FallbackModelName,
		"article_max_output_tokens", cfg.ArticleMaxOutputTokens,
		"strategies", inv.Strategies())
	return generation.Configured(inv), generation.Configured(client.ArticleInvoker())
}
