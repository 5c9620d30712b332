package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/handler"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// listening is closed once the listener is bound; tests read addr after.
	listening chan struct{}
	addr      net.Addr

	runOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		listening:  make(chan struct{}),
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

// Run serves until ctx is done. A server runs once; later calls return
// errServerAlreadyStarted.
func (s *server) Run(ctx context.Context) error {
	err := errServerAlreadyStarted
	s.runOnce.Do(func() {
		err = s.run(ctx)
	})
	return err
}

func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("%w: %w", errServerFailed, err)
	}
	s.addr = ln.Addr()
	close(s.listening)

	served := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("launching HTTP server")
		served <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-served:
		if err != nil {
			return fmt.Errorf("%w: %w", errServerFailed, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	if err = <-served; err != nil {
		return fmt.Errorf("%w: %w", errServerFailed, err)
	}
	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
