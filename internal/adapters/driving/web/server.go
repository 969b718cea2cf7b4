package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/benefits-portal/internal/logger"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// defaultWriteTimeout applies to every route except the MCP stream.
const defaultWriteTimeout = 30 * time.Second

// Config holds the HTTP server settings.
type Config struct {
	// Address is the listen address, e.g. "0.0.0.0:12000".
	Address string

	// TemplatesDir overrides the embedded templates when set.
	TemplatesDir string

	// RateLimit is the per-client request rate in requests per second.
	// Zero disables limiting.
	RateLimit float64

	// RateBurst is the per-client burst size.
	RateBurst int

	// WriteTimeout bounds page and API responses. Zero uses 30s. The MCP
	// endpoint streams and is not bound by it.
	WriteTimeout time.Duration
}

// Server serves the portal pages, the JSON API and the operational endpoints.
type Server struct {
	mu       sync.Mutex
	ports    *Ports
	cfg      Config
	renderer *Renderer
	handler  http.Handler
	server   *http.Server
	listener net.Listener
}

// NewServer creates a web server. Templates are parsed up front so a broken
// template directory fails at startup.
func NewServer(ports *Ports, cfg Config) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	renderer, err := NewRenderer(TemplatesFS(cfg.TemplatesDir))
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	s := &Server{
		ports:    ports,
		cfg:      cfg,
		renderer: renderer,
	}
	s.handler = s.routes()
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleCatalog)
	mux.HandleFunc("POST /services/{id}/start", s.handleStart)
	mux.HandleFunc("GET /apply", s.handleApply)
	mux.HandleFunc("POST /apply", s.handleApplySubmit)
	mux.HandleFunc("POST /apply/exit", s.handleExit)

	mux.HandleFunc("GET /api/services", s.apiServices)
	mux.HandleFunc("GET /api/services/{id}", s.apiService)
	mux.HandleFunc("GET /api/categories", s.apiCategories)
	mux.HandleFunc("GET /api/session", s.apiSession)
	mux.HandleFunc("PUT /api/session/fields/{field}", s.apiUpdateField)
	mux.HandleFunc("POST /api/session/next", s.apiNext)
	mux.HandleFunc("POST /api/session/previous", s.apiPrevious)
	mux.HandleFunc("DELETE /api/session", s.apiExit)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	if s.ports.MCP != nil {
		mux.Handle("/mcp", streaming(s.ports.MCP))
	}

	limiter := newClientLimiter(s.cfg.RateLimit, s.cfg.RateBurst)
	return recoverPanics(instrument(rateLimit(limiter, mux)))
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Renderer returns the page renderer, for template reloading.
func (s *Server) Renderer() *Renderer {
	return s.renderer
}

// Start listens on the configured address and serves in the background.
// Serve errors other than a clean shutdown are sent on the returned channel.
func (s *Server) Start() (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listener, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	}
	s.listener = listener

	writeTimeout := s.cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("portal listening on http://%s", listener.Addr())
	return errCh, nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	errCh, err := s.Start()
	if err != nil {
		return err
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info("portal stopped")
	return nil
}
