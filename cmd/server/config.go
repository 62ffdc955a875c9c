package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/seobrief-api/internal/config"
)

// loadAppConfig loads the application configuration from the environment,
// .env and config.yaml.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"allowed_origins", cfg.CORS.AllowedOrigins)

	if cfg.LLM.Configured() {
		slog.Debug("LLM configuration", "api_key_present", true)
	}

	return cfg, nil
}
