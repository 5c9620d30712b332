package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates a missing token sign key or issuer,
	// or a non-positive token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAPIConfigs indicates unusable page sizes or an empty
	// format list.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidRateLimitConfigs indicates an enabled limiter without a
	// positive limit and window.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
