// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown when none is given.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServerService runs the API server as a supervised service.
//
// Listen may be called before the supervisor starts so that bind errors
// (port in use, bad address) stop the process at startup instead of looping
// through supervisor restarts. When Listen was not called, Serve binds on
// each run.
//
// On ctx cancellation, Shutdown drains in-flight requests for up to
// shutdownTimeout.
//
//	svc := services.NewHTTPServerService(server, 10*time.Second, logging.WithComponent("http"))
//	if err := svc.Listen(); err != nil {
//	    return err
//	}
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          zerolog.Logger

	mu       sync.Mutex
	listener net.Listener
	addr     string
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout uses
// DefaultShutdownTimeout.
func NewHTTPServerService(server *http.Server, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		addr:            server.Addr,
	}
}

// Listen binds the server address. It is a no-op when a listener is
// already pending.
func (h *HTTPServerService) Listen() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.listenLocked()
}

func (h *HTTPServerService) listenLocked() error {
	if h.listener != nil {
		return nil
	}

	addr := h.server.Addr
	if addr == "" {
		addr = ":http"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	h.listener = ln
	h.addr = ln.Addr().String()
	return nil
}

// Addr returns the bound address once Listen or Serve has run, otherwise the
// configured one. With port 0 this is where the kernel-chosen port shows up.
func (h *HTTPServerService) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr
}

// takeListener hands the pending listener to one Serve run. http.Server
// closes it when Serve returns, so a restart binds again.
func (h *HTTPServerService) takeListener() (net.Listener, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.listenLocked(); err != nil {
		return nil, err
	}
	ln := h.listener
	h.listener = nil
	return ln, nil
}

// Serve implements suture.Service.
// http.ErrServerClosed is expected on shutdown and is not reported.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	ln, err := h.takeListener()
	if err != nil {
		return err
	}

	h.logger.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			h.logger.Error().Err(err).Msg("HTTP server failed")
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("HTTP server shutting down")

		// ctx is already canceled, so shutdown gets its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		h.logger.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (h *HTTPServerService) String() string {
	return "http-server"
}
