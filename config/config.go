// Package config reads orrery settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting of the orrery binaries.
type Config struct {
	// AssetDir is the directory holding textures/ and the sound track.
	AssetDir string `env:"ORRERY_ASSET_DIR" envDefault:"static"`
	// SystemFile optionally replaces the built-in body table with a YAML file.
	SystemFile string `env:"ORRERY_SYSTEM_FILE"`

	Width  int `env:"ORRERY_WIDTH" envDefault:"1280"`
	Height int `env:"ORRERY_HEIGHT" envDefault:"720"`

	// Step is the virtual time added per frame.
	Step float64 `env:"ORRERY_STEP" envDefault:"1"`

	Volume float64 `env:"ORRERY_VOLUME" envDefault:"0.5"`
	Mute   bool    `env:"ORRERY_MUTE"`

	DebugUI  bool `env:"ORRERY_DEBUG_UI"`
	Terminal bool `env:"ORRERY_TERMINAL"`
	// FPS paces frames in terminal mode.
	FPS int `env:"ORRERY_FPS" envDefault:"60"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the binaries cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if c.Volume < 0 {
		errs = append(errs, fmt.Errorf("volume %g must not be negative", c.Volume))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FrameInterval returns the wall time between terminal frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.FPS, 1))
}
