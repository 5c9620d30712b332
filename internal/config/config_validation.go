// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violated group
// is reported.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if len(cfg.API.Formats) == 0 || cfg.API.DefaultPageSize < 1 ||
		(cfg.API.MaxPageSize > 0 && cfg.API.MaxPageSize < cfg.API.DefaultPageSize) {
		errs = append(errs, ErrInvalidAPIConfigs)
	}

	if cfg.RateLimit.Enabled && (cfg.RateLimit.Limit < 1 || cfg.RateLimit.Window <= 0) {
		errs = append(errs, ErrInvalidRateLimitConfigs)
	}

	return errors.Join(errs...)
}
