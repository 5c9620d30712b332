package http

import (
	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/format"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/ratelimit"
	"github.com/MKhiriev/go-rest-kit/internal/renderer"
	"github.com/MKhiriev/go-rest-kit/internal/serializer"
	"github.com/MKhiriev/go-rest-kit/internal/service"
)

type Handler struct {
	services *service.Services
	api      config.API
	limiter  ratelimit.Limiter
	errors   *renderer.ErrorHandler

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. limiter may be nil, which disables
// rate limiting.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, limiter ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		api:      cfg.API,
		limiter:  limiter,
		errors:   renderer.NewErrorHandler(cfg.App.Debug, nil),
		logger:   logger,
	}
}

// serializerOptions maps the API settings onto serializer options. A "-"
// collection envelope serves collections unwrapped.
func (h *Handler) serializerOptions() serializer.Options {
	opts := serializer.DefaultOptions()
	opts.CollectionEnvelope = h.api.CollectionEnvelope
	if opts.CollectionEnvelope == "-" {
		opts.CollectionEnvelope = ""
	}
	if h.api.MetaEnvelope != "" {
		opts.MetaEnvelope = h.api.MetaEnvelope
	}
	opts.PreserveKeys = h.api.PreserveKeys
	return opts
}

// apiFormats returns the configured response formats, ignoring unknown
// names.
func (h *Handler) apiFormats() []format.Format {
	formats := make([]format.Format, 0, len(h.api.Formats))
	for _, name := range h.api.Formats {
		f := format.Format(name)
		if _, err := format.EncoderFor(f); err != nil {
			h.logger.Warn().Str("format", name).Msg("unknown response format is ignored")
			continue
		}
		formats = append(formats, f)
	}
	return formats
}

func (h *Handler) negotiator() *format.Negotiator {
	return format.NewNegotiator(h.apiFormats()...)
}
