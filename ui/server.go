package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dashgen/app"
	"dashgen/internal/logging"
)

// Server exposes the generation pipeline over HTTP.
type Server struct {
	router  *chi.Mux
	service *app.GenerationService
	logger  *logging.Logger
}

// NewServer creates the HTTP server around a generation service.
func NewServer(service *app.GenerationService, logger *logging.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		logger:  logger.WithComponent("HTTP"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/datasets/analyze", s.handleAnalyze)
	s.router.Post("/api/datasets/analyze/preview", s.handleAnalyzePreview)
	s.router.Post("/api/patterns/outcome", s.handleOutcome)
}

// Router returns the HTTP handler, for mounting and for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
