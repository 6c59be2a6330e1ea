// Package config loads the YAML configuration for a generation run.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/server-gen/pkg/naming"
)

// Config is the complete configuration for one generation run.
type Config struct {
	// Spec is the OpenAPI document, a filesystem path or an HTTP(S) URL.
	Spec string `yaml:"spec"`
	// OutDir is the output directory for generated sources.
	OutDir string `yaml:"outDir"`
	// PackageName names the generated package in emitted file headers.
	PackageName string `yaml:"packageName"`
	// Naming configures identifier projection for the run.
	Naming Naming `yaml:"naming"`
	// FailOnNameCollision makes the run exit non-zero when any enum case
	// collision was reported. Generation still completes either way, so all
	// collisions in a document are reported in one pass.
	FailOnNameCollision bool `yaml:"failOnNameCollision"`
}

// Naming configures the identifier projector.
type Naming struct {
	// Strategy is "defensive" (default) or "idiomatic". Switching to
	// idiomatic is opt-in because it changes generated identifiers.
	Strategy string `yaml:"strategy"`
	// FoldAccents strips diacritics during idiomatic projection.
	FoldAccents bool `yaml:"foldAccents"`
	// Overrides pins exact identifiers for specific raw document names,
	// bypassing the strategy entirely.
	Overrides map[string]string `yaml:"overrides"`
}

// Load loads and validates configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.normalizePaths()
	return &cfg, nil
}

// Validate checks required fields and the naming strategy value.
func (c *Config) Validate() error {
	if c.Spec == "" {
		return errors.New("config.spec is required")
	}
	if c.OutDir == "" {
		return errors.New("config.outDir is required")
	}
	if _, err := naming.ParseStrategy(c.Naming.Strategy); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizePaths() {
	if !filepath.IsAbs(c.OutDir) {
		if abs, err := filepath.Abs(c.OutDir); err == nil {
			c.OutDir = abs
		}
	}
	// Keep HTTP(S) spec locations as-is; absolutize file paths.
	if u, err := url.Parse(c.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return
	}
	if !filepath.IsAbs(c.Spec) {
		if abs, err := filepath.Abs(c.Spec); err == nil {
			c.Spec = abs
		}
	}
}
