package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a, --address             server address in format [host]:[port]
//	-d, --dsn                 database DSN
//	-c, --config              json file path with configs
//	    --token-sign-key      token signing key
//	    --token-issuer        token issuer name
//	    --token-duration      token duration (e.g., "1h", "30m")
//	    --request-timeout     request timeout (e.g., "30s", "1m")
//	    --debug               expose error details
//	    --log-level           log level
//	    --collection-envelope collection envelope key ("-" to disable)
//	    --formats             negotiable response formats
//	    --rate-limit          requests per window and client (enables the limiter)
//	    --rate-limit-window   rate limit window
//	    --redis-addr          redis address for the shared rate limiter
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&cfg.App.Debug, "debug", false, "Expose error details in responses")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.API.CollectionEnvelope, "collection-envelope", "", `Collection envelope key, "-" to disable`)
	fs.StringSliceVar(&cfg.API.Formats, "formats", nil, "Negotiable response formats, most preferred first")
	fs.IntVar(&cfg.RateLimit.Limit, "rate-limit", 0, "Requests per window and client; enables rate limiting")
	fs.DurationVar(&cfg.RateLimit.Window, "rate-limit-window", 0, "Rate limit window")
	fs.StringVar(&cfg.RateLimit.RedisAddr, "redis-addr", "", "Redis address for the shared rate limiter")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	if fs.Changed("rate-limit") {
		cfg.RateLimit.Enabled = true
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
