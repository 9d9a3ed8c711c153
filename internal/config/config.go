// Package config loads the optional sortpix configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Extensions accepted into the image queue. Matching is case-sensitive.
	Extensions []string `koanf:"extensions"`
	// LogFile is the action log filename, created inside the image root.
	LogFile string `koanf:"log_file"`
	// DisplayWidth/DisplayHeight bound the image display box in pixels.
	DisplayWidth  int `koanf:"display_width"`
	DisplayHeight int `koanf:"display_height"`
	// Seed fixes the queue shuffle for reproducible runs; 0 means random.
	Seed int64 `koanf:"seed"`
	// Sorted disables the shuffle entirely and works the queue in name order.
	Sorted bool `koanf:"sorted"`
}

func defaults() *Config {
	return &Config{
		Extensions:    []string{".png", ".jpg", ".jpeg"},
		LogFile:       "image_labels.csv",
		DisplayWidth:  500,
		DisplayHeight: 500,
	}
}

// Load reads the config files in priority order (last wins) and fills in
// defaults for anything unset. Missing files are fine.
func Load() (*Config, error) {
	return loadFrom(configPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
		}
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	if c.LogFile == "" || c.LogFile != filepath.Base(c.LogFile) {
		return fmt.Errorf("log_file must be a bare filename, got %q", c.LogFile)
	}
	if c.DisplayWidth < 100 || c.DisplayHeight < 100 {
		return fmt.Errorf("display box must be at least 100x100, got %dx%d", c.DisplayWidth, c.DisplayHeight)
	}
	return nil
}

func configPaths() []string {
	paths := []string{
		filepath.Join(xdg.ConfigHome, "sortpix", "config.toml"),
	}
	// ./sortpix.toml (pwd, highest priority)
	paths = append(paths, "sortpix.toml")
	return paths
}

// Paths returns the config file locations consulted by Load, for diagnostics.
func Paths() []string {
	return configPaths()
}
