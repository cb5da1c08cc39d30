package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/prettifier"
	"github.com/aretw0/prettifier/internal/logging"
	"github.com/aretw0/prettifier/pkg/domain"
)

// RenderersURI is the resource exposing the capability map.
const RenderersURI = "prettifier://renderers"

// Service defines what the MCP server needs from the prettifier service.
type Service interface {
	Invoke(ctx context.Context, operation string, args map[string]any) (string, error)
	Operations() []domain.Operation
	Capabilities() domain.Capabilities
}

// Server wraps the prettifier Service and exposes it as an MCP Server.
type Server struct {
	svc       Service
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance with one tool per operation.
func NewServer(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:       svc,
		mcpServer: server.NewMCPServer("prettifier", strings.TrimSpace(prettifier.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and shuts it down
// gracefully when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
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

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	for _, op := range s.svc.Operations() {
		s.mcpServer.AddTool(newTool(op), s.handler(op.Name))
	}
}

// newTool translates a catalog entry into an MCP tool definition.
func newTool(op domain.Operation) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
	for _, p := range op.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}
		switch p.Type {
		case domain.ParamInteger:
			if v, ok := p.Default.(int); ok {
				props = append(props, mcp.DefaultNumber(float64(v)))
			}
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		case domain.ParamBoolean:
			if v, ok := p.Default.(bool); ok {
				props = append(props, mcp.DefaultBool(v))
			}
			opts = append(opts, mcp.WithBoolean(p.Name, props...))
		default:
			if v, ok := p.Default.(string); ok {
				props = append(props, mcp.DefaultString(v))
			}
			opts = append(opts, mcp.WithString(p.Name, props...))
		}
	}
	return mcp.NewTool(op.Name, opts...)
}

func (s *Server) handler(operation string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := s.svc.Invoke(ctx, operation, request.GetArguments())
		if err != nil {
			s.logger.Debug("MCP tool call aborted", "tool", operation, "error", err)
			return nil, fmt.Errorf("%s aborted: %w", operation, err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(RenderersURI, "Installed renderers",
		mcp.WithResourceDescription("Renderers found on the host, keyed by name"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.svc.Capabilities())
		if err != nil {
			return nil, fmt.Errorf("failed to encode renderers: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      RenderersURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
