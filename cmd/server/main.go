package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/handler"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/ratelimit"
	"github.com/MKhiriev/go-rest-kit/internal/server"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/MKhiriev/go-rest-kit/internal/store"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/go-redis/redis/v8"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-rest-kit")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(
		store.NewStorages(db, log),
		cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, newLimiter(cfg.RateLimit, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newLimiter returns nil when rate limiting is off. A Redis address shares
// the counters between replicas.
func newLimiter(cfg config.RateLimit, log *logger.Logger) ratelimit.Limiter {
	if !cfg.Enabled {
		return nil
	}
	if cfg.RedisAddr != "" {
		log.Info().Str("redis", cfg.RedisAddr).Msg("using redis rate limiter")
		return ratelimit.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.Limit, cfg.Window)
	}
	return ratelimit.NewMemoryLimiter(cfg.Limit, cfg.Window)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
