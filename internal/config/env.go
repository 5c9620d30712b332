package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the `env` tags of [StructuredConfig]. Slices are
// comma separated and durations use time.ParseDuration syntax.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
