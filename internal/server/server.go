// Package server implements the chartkit HTTP API.
//
// Endpoints:
//
//	POST   /api/charts          create a chart from a series + options
//	GET    /api/charts          list stored charts
//	GET    /api/charts/{id}     fetch a stored chart (series + layout)
//	DELETE /api/charts/{id}     delete a stored chart
//	GET    /api/charts/{id}.svg rendered SVG
//	GET    /api/charts/{id}.png rendered PNG
//	GET    /healthz             liveness probe
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chartkit/chartkit/pkg/errors"
	"github.com/chartkit/chartkit/pkg/pipeline"
	"github.com/chartkit/chartkit/pkg/store"
)

// Options configures the server.
type Options struct {
	// Addr is the listen address ("host:port").
	Addr string

	// Store persists charts. Required.
	Store store.Store

	// Runner executes the layout and render pipeline. Required.
	Runner *pipeline.Runner

	// Logger receives request and error logs. Defaults to log.Default().
	Logger *log.Logger
}

// Server is the chartkit HTTP API server.
type Server struct {
	opts   Options
	logger *log.Logger
	http   *http.Server
}

// New creates a server. The handler is available via Handler() for
// tests; ListenAndServe starts the real listener.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Server{opts: opts, logger: opts.Logger}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe starts the server and blocks until the context is
// canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.opts.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/charts", func(r chi.Router) {
		r.Post("/", s.handleCreateChart)
		r.Get("/", s.handleListCharts)
		r.Get("/{id}", s.handleGetChart)
		r.Delete("/{id}", s.handleDeleteChart)
		r.Get("/{id}.svg", s.handleRenderChart(pipeline.FormatSVG, "image/svg+xml"))
		r.Get("/{id}.png", s.handleRenderChart(pipeline.FormatPNG, "image/png"))
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// Error Responses
// =============================================================================

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidData, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidLayout:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeChartNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnsupportedMediaType
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}
