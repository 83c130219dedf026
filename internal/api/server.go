// Package api exposes the knowledge engine over HTTP. The surface mirrors
// the engine pipeline: a single-question endpoint, a bounded batch endpoint,
// and read-only endpoints for schema, health, stats, and usage examples.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mindlog-ai/knowledge-engine/internal/config"
	"github.com/mindlog-ai/knowledge-engine/internal/engine"
	"github.com/mindlog-ai/knowledge-engine/internal/graph"
)

// Server hosts the HTTP API for the knowledge engine.
type Server struct {
	cfg    config.ServerConfig
	engine *engine.Engine
	client graph.Client
	logger *slog.Logger
	stats  *Stats

	schema     atomic.Pointer[graph.Schema]
	httpServer *http.Server
}

// NewServer creates an API server around an engine and its graph client.
// A nil logger falls back to slog.Default.
func NewServer(cfg config.ServerConfig, eng *engine.Engine, client graph.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:    cfg,
		engine: eng,
		client: client,
		logger: logger,
		stats:  NewStats(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// SetSchema publishes the cached database schema served by /api/v1/schema.
func (s *Server) SetSchema(schema *graph.Schema) {
	s.schema.Store(schema)
}

// Handler returns the fully wired route handler, including middleware.
// Exposed separately from Start so tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/query", s.handleQuery)
	mux.HandleFunc("POST /api/v1/query/batch", s.handleBatch)
	mux.HandleFunc("GET /api/v1/schema", s.handleSchema)
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/stats", s.handleStats)
	mux.HandleFunc("GET /api/v1/examples", s.handleExamples)
	mux.HandleFunc("/", s.handleNotFound)

	return s.requestMiddleware(mux)
}

// Start runs the HTTP server until ctx is canceled, then shuts down
// gracefully with a short drain window.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("api server starting", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("api server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

// requestMiddleware assigns a request ID and logs each request.
func (s *Server) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Debug("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
