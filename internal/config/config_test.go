package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Play.Width != nil || cfg.Play.Seed != nil {
		t.Fatalf("expected empty config, got %+v", cfg.Play)
	}
}

func TestLoadConfigPlaySection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[play]\nwidth = 31\nheight = 21\nseed = 9\ntrail-ms = 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Play.Width == nil || *cfg.Play.Width != 31 {
		t.Fatalf("unexpected width: %v", cfg.Play.Width)
	}
	if cfg.Play.Height == nil || *cfg.Play.Height != 21 {
		t.Fatalf("unexpected height: %v", cfg.Play.Height)
	}
	if cfg.Play.Seed == nil || *cfg.Play.Seed != 9 {
		t.Fatalf("unexpected seed: %v", cfg.Play.Seed)
	}
	if cfg.Play.TrailMs == nil || *cfg.Play.TrailMs != 0 {
		t.Fatalf("expected explicit zero trail, got %v", cfg.Play.TrailMs)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[play]\nwidht = 31\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TUIMAZE_WIDTH", "41")
	t.Setenv("TUIMAZE_SEED", "123")
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.Width == nil || *cfg.Width != 41 {
		t.Fatalf("unexpected width: %v", cfg.Width)
	}
	if cfg.Seed == nil || *cfg.Seed != 123 {
		t.Fatalf("unexpected seed: %v", cfg.Seed)
	}
	if cfg.Height != nil {
		t.Fatalf("expected unset height, got %d", *cfg.Height)
	}
}

func TestLoadEnvInvalidValue(t *testing.T) {
	t.Setenv("TUIMAZE_HEIGHT", "tall")
	if _, err := LoadEnv(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMergePrefersOverride(t *testing.T) {
	w1, w2, h := 11, 21, 9
	base := PlayConfig{Width: &w1, Height: &h}
	merged := base.Merge(PlayConfig{Width: &w2})
	if *merged.Width != 21 || *merged.Height != 9 {
		t.Fatalf("unexpected merge result: width=%d height=%d", *merged.Width, *merged.Height)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "tuimaze", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "tuimaze", "tuimaze.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
