// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unixdj/qrenc/coding"
)

// config holds the defaults that command line flags override.
type config struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`  // empty: depends on output
	Scale   int    `yaml:"scale"`   // pixels per module
	Margin  int    `yaml:"margin"`  // quiet zone modules
	Workers int    `yaml:"workers"` // 0: one per CPU
}

func defaultConfig() *config {
	return &config{Level: "L", Scale: 4, Margin: 4}
}

// loadConfig reads the YAML file filename over the defaults.
func loadConfig(filename string) (*config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	if _, err := coding.ParseLevel(c.Level); err != nil {
		return err
	}
	if c.Format != "" && formatIndex(c.Format) < 0 {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch {
	case c.Scale < 1:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.Margin < 0:
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
