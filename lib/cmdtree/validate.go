// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks the structural invariants of a command tree. It runs
// once, before the tree accepts any input, so malformed trees never
// reach dispatch or completion. All violations return an error wrapping
// [ErrCommandConfig] and naming the offender.
//
// The invariants, checked recursively on every node:
//
//   - the node has a non-empty name;
//   - sibling subcommand names are pairwise distinct;
//   - option longhand names are distinct; shorthand names, when present,
//     are single characters, distinct among themselves, and distinct
//     from every longhand on the node;
//   - the same rules for switches;
//   - a node that owns subcommands owns no options and no switches.
func Validate(root *Command) error {
	if root == nil {
		return fmt.Errorf("%w: nil command", ErrCommandConfig)
	}
	return validateNode(root)
}

func validateNode(c *Command) error {
	if c.Name == "" {
		return fmt.Errorf("%w: command with empty name", ErrCommandConfig)
	}

	if len(c.Subcommands) > 0 && (len(c.Options) > 0 || len(c.Switches) > 0) {
		return fmt.Errorf("%w: command %q owns subcommands and cannot also own options or switches",
			ErrCommandConfig, c.Name)
	}

	seen := make(map[string]bool, len(c.Subcommands))
	for _, sub := range c.Subcommands {
		if sub == nil {
			return fmt.Errorf("%w: nil subcommand under %q", ErrCommandConfig, c.Name)
		}
		if seen[sub.Name] {
			return fmt.Errorf("%w: duplicate subcommand %q under %q", ErrCommandConfig, sub.Name, c.Name)
		}
		seen[sub.Name] = true
	}

	if err := validateFlagNames(c); err != nil {
		return err
	}

	for _, sub := range c.Subcommands {
		if err := validateNode(sub); err != nil {
			return err
		}
	}
	return nil
}

// validateFlagNames checks the option and switch naming invariants on a
// single node. Option and switch namespaces are checked independently:
// the token grammar (presence of '=') already disambiguates the two at
// parse time.
func validateFlagNames(c *Command) error {
	longs := make(map[string]bool, len(c.Options))
	shorts := make(map[string]bool, len(c.Options))

	for _, opt := range c.Options {
		if err := checkFlagName(c, "option", opt.Longhand, opt.Shorthand, longs, shorts); err != nil {
			return err
		}
	}

	longs = make(map[string]bool, len(c.Switches))
	shorts = make(map[string]bool, len(c.Switches))

	for _, sw := range c.Switches {
		if err := checkFlagName(c, "switch", sw.Longhand, sw.Shorthand, longs, shorts); err != nil {
			return err
		}
	}
	return nil
}

func checkFlagName(c *Command, kind, longhand, shorthand string, longs, shorts map[string]bool) error {
	if longhand == "" {
		return fmt.Errorf("%w: %s with empty longhand on %q", ErrCommandConfig, kind, c.Name)
	}
	if longhand[0] == '-' {
		return fmt.Errorf("%w: %s %q on %q must be stored without hyphens",
			ErrCommandConfig, kind, longhand, c.Name)
	}
	if longs[longhand] || shorts[longhand] {
		return fmt.Errorf("%w: duplicate %s %q on %q", ErrCommandConfig, kind, longhand, c.Name)
	}
	longs[longhand] = true

	if shorthand == "" {
		return nil
	}
	if utf8.RuneCountInString(shorthand) != 1 {
		return fmt.Errorf("%w: shorthand %q for %s %q on %q must be a single character",
			ErrCommandConfig, shorthand, kind, longhand, c.Name)
	}
	if shorts[shorthand] || longs[shorthand] {
		return fmt.Errorf("%w: duplicate shorthand %q on %q", ErrCommandConfig, shorthand, c.Name)
	}
	shorts[shorthand] = true

	return nil
}
