package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/passforge/passforge-go/internal/breach"
	"github.com/passforge/passforge-go/internal/config"
)

// New builds the HTTP server with the production breach client.
func New(cfg config.Config, logger *slog.Logger) *http.Server {
	checker := breach.NewClient(cfg.Breach(), logger)

	return &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           NewRouter(cfg, Deps{Logger: logger, Checker: checker}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.BreachTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// cfg.ShutdownTimeout.
func Run(ctx context.Context, srv *http.Server, cfg config.Config, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
