package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/handler"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/mock"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testHandlers(t *testing.T, cfg *config.StructuredConfig) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)
	services := &service.Services{
		AuthService:    mock.NewMockAuthService(ctrl),
		ArticleService: mock.NewMockArticleService(ctrl),
		AppInfoService: mock.NewMockAppInfoService(ctrl),
	}
	handlers, err := handler.NewHandlers(services, cfg, nil, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer(t *testing.T) {
	cfg := config.Defaults()

	t.Run("http configured", func(t *testing.T) {
		s, err := NewServer(testHandlers(t, cfg), cfg.Server, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("nil handlers", func(t *testing.T) {
		s, err := NewServer(nil, cfg.Server, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})

	t.Run("empty address", func(t *testing.T) {
		s, err := NewServer(testHandlers(t, cfg), config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	cfg := config.Defaults()
	cfg.Server.HTTPAddress = "127.0.0.1:0"

	s, err := NewServer(testHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-srv.listening:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + srv.addr.String() + "/nope")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json; charset=UTF-8", resp.Header.Get("Content-Type"))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Defaults()
	cfg.Server.HTTPAddress = ln.Addr().String()

	s, err := NewServer(testHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	err = s.Run(context.Background())
	assert.ErrorIs(t, err, errServerFailed)
}

func TestServer_RunOnlyOnce(t *testing.T) {
	cfg := config.Defaults()
	cfg.Server.HTTPAddress = "127.0.0.1:0"

	s, err := NewServer(testHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, s.Run(context.Background()), errServerAlreadyStarted)
	})
}
