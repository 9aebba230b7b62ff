// Package config loads and validates the docbind YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-docbind/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidValue   = errors.New("invalid config value")
)

// Bounds for tunables.
const (
	MinImageBound  = 16
	MaxImageBound  = 10000
	MinJPEGQuality = 1
	MaxJPEGQuality = 100
)

// Config holds all configuration for document compilation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Image  ImageConfig  `yaml:"image"`
	Render RenderConfig `yaml:"render"`
}

// OutputConfig defines where and under what name the PDF is written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`      // empty = current working directory
	BaseName string `yaml:"baseName"` // stem of the timestamped file name
}

// ImageConfig defines embedded-image normalization tunables.
type ImageConfig struct {
	MaxDimension int `yaml:"maxDimension"` // px, larger images are downscaled
	JPEGQuality  int `yaml:"jpegQuality"`  // recompression quality (1-100)
}

// RenderConfig defines output rendering options.
type RenderConfig struct {
	PageNumbers bool `yaml:"pageNumbers"` // page-number footer in the PDF
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{BaseName: "compiled_docs"},
		Image:  ImageConfig{MaxDimension: 800, JPEGQuality: 85},
		Render: RenderConfig{PageNumbers: true},
	}
}

// Load reads a config file, applies defaults for zero values, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if cfg.Output.BaseName == "" {
		cfg.Output.BaseName = "compiled_docs"
	}
	if cfg.Image.MaxDimension == 0 {
		cfg.Image.MaxDimension = 800
	}
	if cfg.Image.JPEGQuality == 0 {
		cfg.Image.JPEGQuality = 85
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks tunables against their bounds.
func (c *Config) Validate() error {
	if c.Image.MaxDimension < MinImageBound || c.Image.MaxDimension > MaxImageBound {
		return fmt.Errorf("%w: image.maxDimension %d (must be %d-%d)",
			ErrInvalidValue, c.Image.MaxDimension, MinImageBound, MaxImageBound)
	}
	if c.Image.JPEGQuality < MinJPEGQuality || c.Image.JPEGQuality > MaxJPEGQuality {
		return fmt.Errorf("%w: image.jpegQuality %d (must be %d-%d)",
			ErrInvalidValue, c.Image.JPEGQuality, MinJPEGQuality, MaxJPEGQuality)
	}
	return nil
}
