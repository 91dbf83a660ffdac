package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

const shutdownTimeout = 15 * time.Second

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. On cancellation it drains in-flight requests before
// returning.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	addr := net.JoinHostPort(srv.host, strconv.Itoa(srv.port))
	server := &http.Server{
		Addr:        addr,
		Handler:     srv.gin,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "Started server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		srv.l.Info(ctx, "Shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Server shutdown error: %v", err)
		return err
	}
	srv.l.Info(ctx, "API server stopped.")
	return nil
}
