package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.Auth.TokenSignKey = "secret"
	return cfg
}

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "from-env"}, App: App{Version: "1.0.0"}},
		&StructuredConfig{Auth: Auth{TokenSignKey: "from-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Auth.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress, "defaults survive")
	assert.Equal(t, []string{"json", "xml"}, cfg.API.Formats)
}

func TestBuild_ValidationFailure(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_UsesLastPath(t *testing.T) {
	p := writeTempFile(t, "config.json", `{"app": {"version": "from-json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/missing.json"}, &StructuredConfig{JSONFilePath: p})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-json", b.configs[2].App.Version)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_AllSources(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("AUTH_TOKEN_SIGN_KEY=from-dotenv\nAPP_VERSION=dotenv\n"), 0o600))
	t.Setenv("APP_VERSION", "from-env")
	t.Cleanup(func() { os.Unsetenv("AUTH_TOKEN_SIGN_KEY") })

	jsonPath := writeTempFile(t, "config.jsonc", `{
		// comments are allowed
		"rate_limit": {"enabled": true, "limit": 5, "window": "10s"},
	}`)

	cfg, err := Load([]string{"-a", "127.0.0.1:9000", "-c", jsonPath})
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Auth.TokenSignKey)
	assert.Equal(t, "from-env", cfg.App.Version, "the environment wins over .env")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.Limit)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "items", cfg.API.CollectionEnvelope)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.Auth.TokenSignKey = "" }, wantErr: ErrInvalidAuthConfigs},
		{name: "no token duration", mutate: func(c *StructuredConfig) { c.Auth.TokenDuration = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no formats", mutate: func(c *StructuredConfig) { c.API.Formats = nil }, wantErr: ErrInvalidAPIConfigs},
		{name: "max page below default", mutate: func(c *StructuredConfig) { c.API.MaxPageSize = 5 }, wantErr: ErrInvalidAPIConfigs},
		{
			name:    "enabled limiter without limit",
			mutate:  func(c *StructuredConfig) { c.RateLimit = RateLimit{Enabled: true, Window: time.Minute} },
			wantErr: ErrInvalidRateLimitConfigs,
		},
		{name: "disabled limiter is not checked", mutate: func(c *StructuredConfig) { c.RateLimit = RateLimit{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
