package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
//
// GeminiAPIKey is deliberately optional: without it the service starts, and
// every generation endpoint reports that the model is not configured.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
	// FallbackModelName is used by the last invocation strategy.
	FallbackModelName       string  `mapstructure:"fallback_model_name"        validate:"required"`
	Temperature             float32 `mapstructure:"temperature"                validate:"gte=0,lte=2"`
	MaxOutputTokens         int32   `mapstructure:"max_output_tokens"          validate:"gt=0"`
	FallbackTemperature     float32 `mapstructure:"fallback_temperature"       validate:"gte=0,lte=2"`
	FallbackMaxOutputTokens int32   `mapstructure:"fallback_max_output_tokens" validate:"gt=0"`
	// ArticleMaxOutputTokens caps article output; zero leaves the model's
	// own limit in place.
	ArticleMaxOutputTokens int32 `mapstructure:"article_max_output_tokens" validate:"gte=0"`
	// APIBaseURL is the REST root used by the raw request strategy.
	APIBaseURL string `mapstructure:"api_base_url" validate:"required,url"`
	// Optional prompt template overrides; embedded templates are used when empty.
	BriefPromptPath   string `mapstructure:"brief_prompt_path"`
	ArticlePromptPath string `mapstructure:"article_prompt_path"`
}

// Configured reports whether an API key is present.
func (c LLMConfig) Configured() bool {
	return c.GeminiAPIKey != ""
}

// CORSConfig lists the frontend origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,url"`
}
