// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the REST
// kit server. It aggregates all sub-configurations and is populated by
// merging defaults, a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version, debug mode
	// and the log level.
	App App `envPrefix:"APP_"`

	// Auth holds token signing and session cookie settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// API holds response shaping settings: envelopes, formats, paging.
	API API `envPrefix:"API_"`

	// RateLimit holds the request quota settings.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// JSONFilePath is the optional path to a JSON (with comments) config
	// file merged on top of the other sources.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Debug exposes error chains and stack traces in error responses.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds token and session settings.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid (e.g. "1h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SessionCookie is the name of the cookie carrying the web session.
	// Env: AUTH_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form: "postgres://..." (or
	// "postgresql://...") opens PostgreSQL through pgx, anything else is a
	// SQLite file name or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// API holds response shaping settings.
type API struct {
	// CollectionEnvelope names the key wrapping collections. "-" serves
	// collections unwrapped with pagination headers.
	// Env: API_COLLECTION_ENVELOPE
	CollectionEnvelope string `env:"COLLECTION_ENVELOPE"`

	// MetaEnvelope names the key holding pagination metadata.
	// Env: API_META_ENVELOPE
	MetaEnvelope string `env:"META_ENVELOPE"`

	// PreserveKeys serializes collections as keyed maps.
	// Env: API_PRESERVE_KEYS
	PreserveKeys bool `env:"PRESERVE_KEYS"`

	// Formats lists the negotiable response formats, most preferred first.
	// Env: API_FORMATS (comma separated)
	Formats []string `env:"FORMATS" envSeparator:","`

	// DefaultPageSize and MaxPageSize bound the per-page query parameter.
	// Env: API_DEFAULT_PAGE_SIZE, API_MAX_PAGE_SIZE
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE"`
}

// RateLimit holds the request quota settings.
type RateLimit struct {
	// Enabled turns the rate limiter on.
	// Env: RATE_LIMIT_ENABLED
	Enabled bool `env:"ENABLED"`

	// Limit requests are allowed per Window and client.
	// Env: RATE_LIMIT_LIMIT, RATE_LIMIT_WINDOW
	Limit  int           `env:"LIMIT"`
	Window time.Duration `env:"WINDOW"`

	// RedisAddr switches to the shared Redis counter when set.
	// Env: RATE_LIMIT_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`
}

// Defaults returns the configuration used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev", LogLevel: "info"},
		Auth: Auth{
			TokenIssuer:   "go-rest-kit",
			TokenDuration: 24 * time.Hour,
			SessionCookie: "rest_kit_session",
		},
		Storage: Storage{DB: DB{DSN: "file:rest-kit.db?_foreign_keys=on"}},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: API{
			CollectionEnvelope: "items",
			MetaEnvelope:       "_meta",
			Formats:            []string{"json", "xml"},
			DefaultPageSize:    20,
			MaxPageSize:        100,
		},
		RateLimit: RateLimit{Limit: 100, Window: time.Minute},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields):
//  1. Defaults
//  2. .env file (only fills variables missing from the environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load is GetStructuredConfig with explicit command-line arguments.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
