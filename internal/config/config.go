// SPDX-License-Identifier: EPL-2.0

// Package config loads the mediaconv YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ik5/mediaconv/internal/logger"
)

const (
	configDir      = "mediaconv"
	configFilename = "mediaconv.yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// OutputDir receives converted files. Empty means the current directory.
	OutputDir string `yaml:"output_dir"`

	// DefaultTarget is used when no target is given on the command line.
	DefaultTarget string `yaml:"default_target"`

	// FFmpegPath points at the ffmpeg binary. Empty means PATH lookup.
	FFmpegPath string `yaml:"ffmpeg_path"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`

	// TargetRate resamples WAV output when > 0.
	TargetRate int  `yaml:"target_rate"`
	Mono       bool `yaml:"mono"`
}

func Default() *Config {
	return &Config{
		OutputDir:     ".",
		DefaultTarget: "wav",
		LogLevel:      "info",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/mediaconv/mediaconv.yaml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, configDir, configFilename), nil
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file yields the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("no config at %s, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.TargetRate < 0 {
		return fmt.Errorf("%w: target_rate %d is negative", ErrInvalidConfig, c.TargetRate)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
