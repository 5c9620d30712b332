package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "10.0.0.1:80", want: NetAddress{Host: "10.0.0.1", Port: 80}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://localhost/db",
		"--config", "/etc/kit.json",
		"--token-sign-key", "key",
		"--token-issuer", "iss",
		"--token-duration", "2h",
		"--request-timeout", "15s",
		"--debug",
		"--log-level", "debug",
		"--collection-envelope", "-",
		"--formats", "json,yaml",
		"--rate-limit", "30",
		"--rate-limit-window", "30s",
		"--redis-addr", "localhost:6379",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/kit.json", cfg.JSONFilePath)
	assert.Equal(t, Auth{TokenSignKey: "key", TokenIssuer: "iss", TokenDuration: 2 * time.Hour}, cfg.Auth)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "-", cfg.API.CollectionEnvelope)
	assert.Equal(t, []string{"json", "yaml"}, cfg.API.Formats)
	assert.Equal(t, RateLimit{Enabled: true, Limit: 30, Window: 30 * time.Second, RedisAddr: "localhost:6379"}, cfg.RateLimit)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "nowhere"},
		{"--token-duration", "soon"},
		{"--unknown"},
	} {
		_, err := ParseFlags(args)
		assert.Error(t, err, args)
	}
}
