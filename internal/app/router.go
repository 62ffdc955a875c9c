package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/seobrief-api/internal/api"
	apiMiddleware "github.com/phrazzld/seobrief-api/internal/api/middleware"
)

// corsMaxAge is how long browsers may cache a preflight response, in seconds.
const corsMaxAge = 300

// Router creates the application router with all routes and middleware.
func (app *Application) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{apiMiddleware.TraceIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))
	r.Use(apiMiddleware.Trace(app.logger))

	seoHandler := api.NewSEOHandler(app.seoService, app.config.LLM.GeminiAPIKey)

	r.Route("/api", func(r chi.Router) {
		r.Post("/brief", seoHandler.CreateBrief)
		r.Post("/article", seoHandler.CreateArticle)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
