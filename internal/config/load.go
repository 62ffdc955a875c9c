package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "SEOBRIEF"

// LegacyAPIKeyEnv is accepted in addition to SEOBRIEF_LLM_GEMINI_API_KEY.
const LegacyAPIKeyEnv = "GEMINI_API_KEY"

// Defaults applied before any file or environment value.
var defaults = map[string]interface{}{
	"server.port":                    8000,
	"server.log_level":               "info",
	"llm.model_name":                 "gemini-2.5-flash",
	"llm.fallback_model_name":        "gemini-2.0-flash",
	"llm.temperature":                0.3,
	"llm.max_output_tokens":          1024,
	"llm.fallback_temperature":       0.2,
	"llm.fallback_max_output_tokens": 512,
	"llm.article_max_output_tokens":  0,
	"llm.api_base_url":               "https://generativelanguage.googleapis.com/v1beta",
	"llm.brief_prompt_path":          "",
	"llm.article_prompt_path":        "",
	"cors.allowed_origins":           []string{"http://localhost:3000", "https://microgen.vercel.app"},
}

// Load configuration from a .env file, environment variables and optionally
// a config.yaml in the working directory. Environment variables take
// precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about; bind each
	// default explicitly so Unmarshal sees environment overrides.
	for key := range defaults {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", LegacyAPIKeyEnv); err != nil {
		return nil, fmt.Errorf("failed to bind env for llm.gemini_api_key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Comma separated origins are common in env files.
	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func splitOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
