// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package config loads exporter settings from defaults, an optional TOML
// file and USDAI_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/PaulDoessel/usd-arnold/sdf"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "USDAI"

// Config is the complete exporter configuration.
type Config struct {
	Export Export `toml:"export"`
	Log    Log    `toml:"log"`
}

// Export configures export sessions.
type Export struct {
	// MaterialScope is the prim path materials are created under.
	MaterialScope string `toml:"material_scope" envconfig:"MATERIAL_SCOPE"`

	// Params restricts exported parameters by name. Empty exports all.
	Params []string `toml:"params" envconfig:"PARAMS"`
}

// Log configures the logger.
type Log struct {
	Level    string `toml:"level" envconfig:"LEVEL"`
	Format   string `toml:"format" envconfig:"FORMAT"`
	Output   string `toml:"output" envconfig:"OUTPUT"`
	FilePath string `toml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Export: Export{MaterialScope: "/Looks"},
		Log: Log{
			Level:    "info",
			Format:   "console",
			Output:   "stderr",
			FilePath: "usdaiexport.log",
		},
	}
}

// Load builds the configuration. path may be empty to skip the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config: %s: %s", path, strict.String())
		}
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Validate checks the values that cannot be checked by type alone.
func (c *Config) Validate() error {
	c.Export.Params = compactParams(c.Export.Params)
	if _, err := c.Export.Scope(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: log format %q is not console or json", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Output) {
	case "stdout", "stderr":
	case "file":
		if c.Log.FilePath == "" {
			return errors.New("config: log output is file but file_path is empty")
		}
	default:
		return fmt.Errorf("config: log output %q is not stdout, stderr or file", c.Log.Output)
	}
	return nil
}

// Scope parses the material scope.
func (e Export) Scope() (sdf.Path, error) {
	p, err := sdf.NewPath(e.MaterialScope)
	if err != nil {
		return sdf.Path{}, fmt.Errorf("config: material_scope: %w", err)
	}
	if p.IsEmpty() || p.IsPropertyPath() {
		return sdf.Path{}, fmt.Errorf("config: material_scope %q is not a prim path", e.MaterialScope)
	}
	return p, nil
}

// compactParams drops blank names. A list with no names left is nil, so
// an empty setting exports every parameter.
func compactParams(names []string) []string {
	var out []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
