// Package server exposes the game service over HTTP with JSON responses.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/creational-arcade/internal/game"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// ShutdownTimeout bounds how long in-flight requests may take on shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:         ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves the game API.
type Server struct {
	config  Config
	service *game.Service
	logger  *log.Logger
	server  *http.Server
}

// New creates a server for svc. A nil logger gets a default stderr logger.
func New(cfg Config, svc *game.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-http",
		})
	}

	s := &Server{
		config:  cfg,
		service: svc,
		logger:  logger,
	}
	s.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /state", s.handleState)
	mux.HandleFunc("GET /kinds", s.handleKinds)
	mux.HandleFunc("POST /set-theme", s.handleSetTheme)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("POST /build-level", s.handleBuildLevel)
	mux.HandleFunc("POST /spawn/{kind}", s.handleSpawn)

	return s.recoverMiddleware(s.loggingMiddleware(mux))
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	}
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", s.config.Address, err)
	}
	s.logger.Info("starting HTTP server", "address", l.Addr().String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Serve(ctx, l)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's configured listen address.
func (s *Server) Addr() string {
	return s.config.Address
}
