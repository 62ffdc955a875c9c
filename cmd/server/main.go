// Package main implements the entry point for the SEO brief API server,
// which turns a keyword into an SEO content brief or a markdown article
// using the Gemini API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/seobrief-api/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run loads configuration, builds the application and serves it until ctx
// is canceled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return startHTTPServer(ctx, newHTTPServer(cfg.Server.Port, application.Router()), logger)
}
