package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// serve blocks until the server is closed. A regular shutdown is not an
// error.
func (h *httpServer) serve(ln net.Listener) error {
	err := h.server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) listen() (net.Listener, error) {
	return net.Listen("tcp", h.server.Addr)
}

func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server shutdown")
		_ = h.server.Close()
	}
}
