// Package api exposes the vessel tracker's HTTP interface: destination
// decoding, nearest-port lookup, health, and metrics.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ryantusi/GMS-Vessel-Tracker/internal/observability"
	"github.com/ryantusi/GMS-Vessel-Tracker/locode"
)

// Decoder is the slice of the destination decoder the API consumes; both
// the bare locode.Decoder and the caching decorator satisfy it.
type Decoder interface {
	Decode(rawInput string) locode.DecodeResult
}

// Server handles HTTP traffic for the vessel tracker backend.
type Server struct {
	httpServer *http.Server
	decoder    Decoder
	registry   *locode.Registry
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer wires the routes and returns a server ready to Start.
func NewServer(addr string, decoder Decoder, registry *locode.Registry, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		decoder:  decoder,
		registry: registry,
		logger:   logger,
		metrics:  metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.instrument("root", s.handleRoot))
	r.Get("/health", s.instrument("health", s.handleHealth))
	r.Post("/api/destination", s.instrument("destination", s.handleDestination))
	r.Get("/api/nearest", s.instrument("nearest", s.handleNearest))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// instrument wraps a handler with request counting and duration metrics.
func (s *Server) instrument(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)
		s.metrics.HTTPRequests.WithLabelValues(name, strconv.Itoa(ww.Status())).Inc()
		s.metrics.HTTPDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vessel Tracker Backend is Live 🚢"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
