// Package rest wires the HTTP layer: routes, middleware and static assets.
package rest

import (
	"net/http"

	"github.com/omercangizik/AniKutusu1/internal/config"
	"github.com/omercangizik/AniKutusu1/interfaces/http/rest/handlers"
	"github.com/omercangizik/AniKutusu1/interfaces/http/rest/middleware"
	"github.com/omercangizik/AniKutusu1/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	auth     *handlers.AuthHandler
	memories *handlers.MemoryHandler
	metrics  *observability.Collector
	cfg      *config.Config
	logger   *zap.Logger

	// static serves the embedded web client; nil in the cloud-function
	// packaging, which exposes the API only.
	static http.Handler
}

// NewRouter creates a new router instance
func NewRouter(
	auth *handlers.AuthHandler,
	memories *handlers.MemoryHandler,
	metrics *observability.Collector,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		auth:     auth,
		memories: memories,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}

// WithStatic serves the given handler for anything outside /api.
func (rt *Router) WithStatic(static http.Handler) *Router {
	rt.static = static
	return rt
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Metrics scraping
	router.Handle("/metrics", rt.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", rt.auth.Login)
			r.Post("/register", rt.auth.Register)
		})

		r.Route("/memories", func(r chi.Router) {
			r.Get("/{id}", rt.memories.List)
			r.Post("/{id}", rt.memories.Create)
			r.Get("/{id}/{memoryId}", rt.memories.Get)
			r.Delete("/{id}/{memoryId}", rt.memories.Delete)
		})
	})

	if rt.static != nil {
		router.NotFound(rt.static.ServeHTTP)
	}

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
