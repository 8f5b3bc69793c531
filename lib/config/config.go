// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for boxshell.
//
// Configuration is loaded from the single YAML file named by the
// BOXSHELL_CONFIG environment variable. There are no fallbacks or
// automatic discovery: an unset variable means built-in defaults, and a
// set variable pointing at a missing or malformed file is an error.
// This keeps configuration deterministic with no hidden overrides.
//
// Container aliases live in a separate JSONC file (see [LoadAliases])
// so users can annotate them with comments.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the boxshell configuration.
type Config struct {
	// Docker is the docker executable to invoke. Defaults to "docker";
	// set it to "podman" or an absolute path as needed.
	Docker string `yaml:"docker"`

	// DefaultShell is the shell launched by "enter" when --shell is not
	// given and the target alias declares none.
	DefaultShell string `yaml:"default_shell"`

	// Shells are the shell names offered by tab completion for the
	// --shell option, in the order they should appear.
	Shells []string `yaml:"shells"`

	// ListAll makes "list" include stopped containers without --all.
	ListAll bool `yaml:"list_all"`

	// AliasFile points at the JSONC container alias file. Empty means
	// no aliases.
	AliasFile string `yaml:"alias_file"`
}

// Default returns the built-in configuration used when no config file
// is set.
func Default() Config {
	return Config{
		Docker:       "docker",
		DefaultShell: "bash",
		Shells:       []string{"bash", "sh"},
	}
}

// Load reads the configuration file at path. An empty path returns
// [Default]. Unknown fields are rejected so typos fail loudly instead
// of silently falling back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		// An empty file is a valid config: all defaults.
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
