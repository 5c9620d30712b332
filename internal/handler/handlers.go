package handler

import (
	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/handler/http"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/ratelimit"
	"github.com/MKhiriev/go-rest-kit/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. limiter may be
// nil when rate limiting is off.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, limiter ratelimit.Limiter, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg == nil || cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil {
		return nil, errNoServices
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, limiter, logger),
	}, nil
}
