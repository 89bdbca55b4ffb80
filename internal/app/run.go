package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/vk/nutshell/internal/ctxlog"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the web surface on the configured address until ctx is done,
// then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Addr, err)
	}
	return a.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (a *App) ServeListener(ctx context.Context, ln net.Listener) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	srv := NewServer(ctx, a)
	defer srv.Close()

	httpServer := &http.Server{Handler: srv}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("🥜 Serving deck and catalog.",
			"deck", fmt.Sprintf("http://%s/deck/1", ln.Addr()),
			"stories", fmt.Sprintf("http://%s/stories/", ln.Addr()),
		)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down web server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
		return err
	}
	logger.Debug("Web server shut down gracefully.")
	return nil
}
