package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/seobrief-api/internal/config"
	"github.com/phrazzld/seobrief-api/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models the strategies use.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client submits prompts to Gemini. It is created once at startup and
// shared read-only by all requests.
type Client struct {
	logger     *slog.Logger
	config     config.LLMConfig
	models     contentGenerator
	httpClient *http.Client
}

// NewClient validates cfg and creates a Gemini API client.
//
// Returns an error wrapping generation.ErrInvalidConfig if the configuration
// is incomplete or the SDK client cannot be created.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newClient(logger, cfg, sdk.Models, &http.Client{Timeout: 2 * time.Minute}), nil
}

func newClient(logger *slog.Logger, cfg config.LLMConfig, models contentGenerator, httpClient *http.Client) *Client {
	return &Client{
		logger:     logger,
		config:     cfg,
		models:     models,
		httpClient: httpClient,
	}
}

func validateConfig(cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.FallbackModelName == "" {
		return fmt.Errorf("%w: fallback model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.APIBaseURL == "" {
		return fmt.Errorf("%w: API base URL cannot be empty", generation.ErrInvalidConfig)
	}
	return nil
}

// generationOptions is the generation config one use case sends. A nil
// temperature and zero token budget leave the model defaults in place.
type generationOptions struct {
	temperature     *float32
	maxOutputTokens int32
}

func (o generationOptions) config() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     o.temperature,
		MaxOutputTokens: o.maxOutputTokens,
	}
}

func (c *Client) briefOptions() generationOptions {
	return generationOptions{
		temperature:     genai.Ptr(c.config.Temperature),
		maxOutputTokens: c.config.MaxOutputTokens,
	}
}

func (c *Client) briefFallbackOptions() generationOptions {
	return generationOptions{
		temperature:     genai.Ptr(c.config.FallbackTemperature),
		maxOutputTokens: c.config.FallbackMaxOutputTokens,
	}
}

// articleOptions sends no temperature and caps output only when
// ArticleMaxOutputTokens is set. Articles run to thousands of words.
func (c *Client) articleOptions() generationOptions {
	return generationOptions{maxOutputTokens: c.config.ArticleMaxOutputTokens}
}

// Invoker returns an invoker over Strategies, for briefs.
func (c *Client) Invoker() *generation.Invoker {
	return generation.NewInvoker(c.logger, c.Strategies()...)
}

// ArticleInvoker returns an invoker over ArticleStrategies.
func (c *Client) ArticleInvoker() *generation.Invoker {
	return generation.NewInvoker(c.logger, c.ArticleStrategies()...)
}

// Strategies returns the brief call shapes to try, most preferred first.
func (c *Client) Strategies() []generation.Strategy {
	return c.strategies(c.briefOptions(), c.briefFallbackOptions())
}

// ArticleStrategies returns the same call shapes as Strategies with the
// article generation config on every one of them.
func (c *Client) ArticleStrategies() []generation.Strategy {
	return c.strategies(c.articleOptions(), c.articleOptions())
}

func (c *Client) strategies(opts, fallback generationOptions) []generation.Strategy {
	return []generation.Strategy{
		{Name: "positional", Call: func(ctx context.Context, prompt string) (interface{}, error) {
			return c.generatePositional(ctx, prompt, opts)
		}},
		{Name: "positional_no_options", Call: c.generatePositionalNoOptions},
		{Name: "user_message", Call: func(ctx context.Context, prompt string) (interface{}, error) {
			return c.generateUserMessage(ctx, prompt, opts)
		}},
		{Name: "system_instruction", Call: func(ctx context.Context, prompt string) (interface{}, error) {
			return c.generateSystemInstruction(ctx, prompt, opts)
		}},
		{Name: "rest_request", Call: func(ctx context.Context, prompt string) (interface{}, error) {
			return c.generateREST(ctx, prompt, opts)
		}},
		{Name: "fallback_model", Call: func(ctx context.Context, prompt string) (interface{}, error) {
			return c.generateFallbackModel(ctx, prompt, fallback)
		}},
	}
}

func (c *Client) generatePositional(ctx context.Context, prompt string, opts generationOptions) (interface{}, error) {
	return c.generate(ctx, c.config.ModelName, genai.Text(prompt), opts.config())
}

func (c *Client) generatePositionalNoOptions(ctx context.Context, prompt string) (interface{}, error) {
	return c.generate(ctx, c.config.ModelName, genai.Text(prompt), nil)
}

func (c *Client) generateUserMessage(ctx context.Context, prompt string, opts generationOptions) (interface{}, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	return c.generate(ctx, c.config.ModelName, contents, opts.config())
}

func (c *Client) generateSystemInstruction(ctx context.Context, prompt string, opts generationOptions) (interface{}, error) {
	cfg := opts.config()
	cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: prompt}}}
	return c.generate(ctx, c.config.ModelName, genai.Text("Follow the system instructions."), cfg)
}

func (c *Client) generateFallbackModel(ctx context.Context, prompt string, opts generationOptions) (interface{}, error) {
	return c.generate(ctx, c.config.FallbackModelName, genai.Text(prompt), opts.config())
}

// generate performs one SDK call and normalises its outcome. A response
// whose first candidate carries no text is an error, never a result.
func (c *Client) generate(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	opts *genai.GenerateContentConfig,
) (interface{}, error) {
	resp, err := c.models.GenerateContent(ctx, model, contents, opts)
	if err != nil {
		return nil, classify(err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: gemini returned a nil response", generation.ErrInvalidResponse)
	}
	if err := checkBlocked(resp); err != nil {
		return nil, err
	}
	wrapped := NewResponse(resp)
	if wrapped.Text() == "" {
		return nil, fmt.Errorf("%w: %s", generation.ErrInvalidResponse, wrapped.summary())
	}
	return wrapped, nil
}

// checkBlocked reports a prompt or candidate stopped by safety filters.
func checkBlocked(resp *genai.GenerateContentResponse) error {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil &&
		resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return fmt.Errorf("%w: candidate stopped by safety filters", generation.ErrContentBlocked)
	}
	return nil
}
