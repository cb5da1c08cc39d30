package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/prettifier"
	"github.com/aretw0/prettifier/internal/logging"
	"github.com/aretw0/prettifier/pkg/domain"
)

// MaxBodyBytes bounds the size of an operation request body.
const MaxBodyBytes = 8 << 20

// Service defines what the HTTP adapter needs from the prettifier service.
type Service interface {
	Invoke(ctx context.Context, operation string, args map[string]any) (string, error)
	Operations() []domain.Operation
	Capabilities() domain.Capabilities
}

// Server exposes a Service over a small JSON/text API.
type Server struct {
	svc     Service
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer creates a Server for svc.
func NewServer(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router.
//
//	POST /v1/operations/{name}  run an operation, JSON object in, text out
//	GET  /v1/operations         operation catalog
//	GET  /v1/renderers          capability map
//	GET  /healthz, /info        liveness and version
//	GET  /metrics               when a metrics handler is configured
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/operations", s.ListOperations)
		r.Post("/operations/{name}", s.InvokeOperation)
		r.Get("/renderers", s.ListRenderers)
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Serve listens on port until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "address", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			if cerr := srv.Close(); cerr != nil {
				s.logger.Error("Error killing server", "error", cerr)
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// InvokeOperation handles POST /v1/operations/{name}.
// Unknown names answer 200 with the same message the MCP tool would return.
func (s *Server) InvokeOperation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	args, err := decodeArgs(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := s.svc.Invoke(r.Context(), name, args)
	if err != nil {
		s.logger.Debug("HTTP operation aborted", "operation", name, "error", err)
		status := http.StatusServiceUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, out)
}

// decodeArgs reads a JSON object. An empty body or null means no arguments.
func decodeArgs(body io.Reader) (map[string]any, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, errors.New("expected a JSON object")
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// ListOperations handles GET /v1/operations.
func (s *Server) ListOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.svc.Operations())
}

// ListRenderers handles GET /v1/renderers.
func (s *Server) ListRenderers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.svc.Capabilities())
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"app":     "prettifier-http",
		"version": strings.TrimSpace(prettifier.Version),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
