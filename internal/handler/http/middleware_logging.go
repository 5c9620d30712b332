package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors are
// logged at error level, client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.Status()
		log.WithLevel(accessLogLevel(status)).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_ip", clientKey(r)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", rec.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
