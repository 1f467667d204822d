package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/whatap/mock-azure-exporter/internal/config"
)

// Server is the main HTTP server for the mock exporter.
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	mux        *http.ServeMux
}

// New creates a new Server with the given configuration.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
	}
}

// Mux returns the server's ServeMux for registering routes.
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

// Run starts the server and blocks until a shutdown signal is received.
func (s *Server) Run(ctx context.Context) error {
	var handler http.Handler = s.mux
	handler = Chain(handler,
		Metrics,
		Recovery,
		Logging,
	)

	if s.cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, s.cfg.RequestTimeout, "request timeout exceeded")
	}

	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", s.cfg.Addr())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}
