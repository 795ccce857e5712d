// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Play PlayConfig `toml:"play"`
}

// PlayConfig maps play-related settings. Nil means unset.
type PlayConfig struct {
	Width   *int   `toml:"width" env:"TUIMAZE_WIDTH"`
	Height  *int   `toml:"height" env:"TUIMAZE_HEIGHT"`
	Seed    *int64 `toml:"seed" env:"TUIMAZE_SEED"`
	TrailMs *int   `toml:"trail-ms" env:"TUIMAZE_TRAIL_MS"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Merge returns p with every field set in override replacing p's value.
func (p PlayConfig) Merge(override PlayConfig) PlayConfig {
	if override.Width != nil {
		p.Width = override.Width
	}
	if override.Height != nil {
		p.Height = override.Height
	}
	if override.Seed != nil {
		p.Seed = override.Seed
	}
	if override.TrailMs != nil {
		p.TrailMs = override.TrailMs
	}
	return p
}
