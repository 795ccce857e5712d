package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LoadEnv reads TUIMAZE_* overrides from the environment. Unset variables
// leave the matching field nil.
func LoadEnv() (PlayConfig, error) {
	var cfg PlayConfig
	if err := env.Parse(&cfg); err != nil {
		return PlayConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
