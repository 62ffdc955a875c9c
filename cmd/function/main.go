// Package main runs the SEO brief API as a Google Cloud Function using the
// Functions Framework. The same router as the standalone server handles
// every request.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/phrazzld/seobrief-api/internal/app"
	"github.com/phrazzld/seobrief-api/internal/config"
	"github.com/phrazzld/seobrief-api/internal/platform/logger"
)

// FunctionName is the target name the function is registered under.
const FunctionName = "SEOBrief"

var (
	initOnce sync.Once
	router   http.Handler
	initErr  error
)

func init() {
	functions.HTTP(FunctionName, SEOBrief)
}

// SEOBrief serves one function invocation. The application is built on the
// first request and reused by later ones.
func SEOBrief(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		router, initErr = buildRouter(context.Background())
	})
	if initErr != nil {
		log.Printf("Failed to initialize function: %v", initErr)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}

func buildRouter(ctx context.Context) (http.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	application, err := app.New(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Router(), nil
}

func main() {
	// The Functions Framework listens on PORT, defaulting to 8080.
	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	// Serve this function at "/" when run locally.
	if os.Getenv("FUNCTION_TARGET") == "" {
		if err := os.Setenv("FUNCTION_TARGET", FunctionName); err != nil {
			log.Fatalf("setting FUNCTION_TARGET: %v", err)
		}
	}
	if err := funcframework.Start(port); err != nil {
		log.Fatalf("funcframework.Start: %v", err)
	}
}
