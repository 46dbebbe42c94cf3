package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/analyzer"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/cache"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Server represents the HTTP API server.
type Server struct {
	router  *chi.Mux
	handler *Handler
	server  *http.Server
	config  domain.ServerConfig
}

// NewServer creates the API server with the full middleware stack.
func NewServer(cfg *domain.Config, svc *analyzer.Service, resultCache cache.Cache, version string) *Server {
	handler := NewHandler(svc, resultCache, cfg, version)
	router := chi.NewRouter()

	router.Use(CORSMiddleware)
	router.Use(RecoverMiddleware)
	router.Use(TracingMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(middleware.RealIP)
	router.Use(middleware.Compress(5))
	if cfg.Server.RateLimit.Enabled {
		router.Use(RateLimitMiddleware(cfg.Server.RateLimit))
	}

	router.Get("/health", handler.Health)
	router.Get("/ready", handler.Ready)

	router.Post("/analyze", handler.Analyze)
	router.Get("/config/rules", handler.ActiveRules)

	return &Server{
		router:  router,
		handler: handler,
		config:  cfg.Server,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
