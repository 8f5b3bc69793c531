// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Alias maps a short name to a container, with an optional shell
// override. Alias names participate in "enter" tab completion alongside
// live container names.
type Alias struct {
	// Name is the short name typed by the user.
	Name string `json:"name"`

	// Container is the container the alias resolves to.
	Container string `json:"container"`

	// Shell overrides the configured default shell for this alias.
	Shell string `json:"shell,omitempty"`
}

// LoadAliases parses the JSONC alias file at path. The format is a JSON
// array of alias objects; comments and trailing commas are allowed so
// the file stays pleasant to maintain by hand. A missing file is not an
// error — aliases are optional.
func LoadAliases(path string) ([]Alias, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read alias file: %w", err)
	}

	var aliases []Alias
	if err := json.Unmarshal(jsonc.ToJSON(data), &aliases); err != nil {
		return nil, fmt.Errorf("parse alias file %s: %w", path, err)
	}

	for i, alias := range aliases {
		if alias.Name == "" {
			return nil, fmt.Errorf("alias file %s: entry %d has no name", path, i)
		}
		if alias.Container == "" {
			return nil, fmt.Errorf("alias file %s: alias %q has no container", path, alias.Name)
		}
	}
	return aliases, nil
}
