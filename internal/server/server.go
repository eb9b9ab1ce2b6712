// Package server exposes the dashboard over HTTP: bill upload and
// analysis, the weather panel, and generation-guarded sessions.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/kaipengyu/ppl-small-win/internal/billing"
	"github.com/kaipengyu/ppl-small-win/internal/config"
	"github.com/kaipengyu/ppl-small-win/internal/core"
	"github.com/kaipengyu/ppl-small-win/internal/dashboard"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
)

// Analyzer runs one full bill analysis.
type Analyzer interface {
	Analyze(ctx context.Context, pdfBytes []byte, fileName string) (core.Dashboard, error)
}

// Forecaster serves the standalone weather panel endpoint.
type Forecaster interface {
	Forecast(ctx context.Context, address string) core.WeatherData
}

// Server represents the HTTP server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     config.Server
	log        *slog.Logger

	analyzer   Analyzer
	forecaster Forecaster
	sessions   *dashboard.Store

	// upload sanity check, swappable in tests
	checkPDF func([]byte) (int, error)
}

// New creates a new HTTP server instance.
func New(cfg config.Server, analyzer Analyzer, forecaster Forecaster) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		config:     cfg,
		log:        logger.Get(),
		analyzer:   analyzer,
		forecaster: forecaster,
		sessions:   dashboard.NewStore(),
		checkPDF:   billing.CheckPDF,
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupMiddleware configures middleware for the server.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	// Extraction plus two image generations can take a while.
	s.router.Use(middleware.Timeout(120 * time.Second))

	// Structured access log.
	accessLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	s.router.Use(hlog.NewHandler(accessLog))
	s.router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	s.router.Use(hlog.RemoteAddrHandler("ip"))

	if s.config.CORS.Enabled {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

// setupRoutes configures routes for the server.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/status", s.handleStatus)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/weather", s.handleWeather)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/{id}", s.handleGetSession)
			r.Post("/{id}/analyze", s.handleSessionAnalyze)
			r.Delete("/{id}", s.handleDeleteSession)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.config.ReadTimeout,
		"write_timeout", s.config.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing).
func (s *Server) Router() *chi.Mux {
	return s.router
}
