package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
// Comments and trailing commas are allowed.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		Debug    bool   `json:"debug"`
		LogLevel string `json:"log_level"`
	} `json:"app"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SessionCookie string   `json:"session_cookie"`
	} `json:"auth"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`

	API struct {
		CollectionEnvelope string   `json:"collection_envelope"`
		MetaEnvelope       string   `json:"meta_envelope"`
		PreserveKeys       bool     `json:"preserve_keys"`
		Formats            []string `json:"formats"`
		DefaultPageSize    int      `json:"default_page_size"`
		MaxPageSize        int      `json:"max_page_size"`
	} `json:"api"`

	RateLimit struct {
		Enabled   bool     `json:"enabled"`
		Limit     int      `json:"limit"`
		Window    Duration `json:"window"`
		RedisAddr string   `json:"redis_addr"`
	} `json:"rate_limit"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			Debug:    jsonCfg.App.Debug,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			SessionCookie: jsonCfg.Auth.SessionCookie,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		API: API{
			CollectionEnvelope: jsonCfg.API.CollectionEnvelope,
			MetaEnvelope:       jsonCfg.API.MetaEnvelope,
			PreserveKeys:       jsonCfg.API.PreserveKeys,
			Formats:            jsonCfg.API.Formats,
			DefaultPageSize:    jsonCfg.API.DefaultPageSize,
			MaxPageSize:        jsonCfg.API.MaxPageSize,
		},
		RateLimit: RateLimit{
			Enabled:   jsonCfg.RateLimit.Enabled,
			Limit:     jsonCfg.RateLimit.Limit,
			Window:    time.Duration(jsonCfg.RateLimit.Window),
			RedisAddr: jsonCfg.RateLimit.RedisAddr,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
