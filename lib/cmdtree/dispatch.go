// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Resolve walks tokens left to right against the command tree and
// returns the terminal command together with its parsed invocation.
//
// Hyphen-prefixed tokens are matched against the current command's
// declared flags: tokens containing '=' are options (the value is the
// raw text after the first '='), tokens without '=' are switches. Both
// are validated strictly; an undeclared name aborts the whole call with
// [ErrUnknownOption] or [ErrUnknownSwitch] and no partial execution.
//
// A bare token that names a subcommand hands the remaining tokens to
// that subcommand with fresh accumulators; anything the parent had
// collected past that point is abandoned. A bare token that names no
// subcommand is a positional argument.
func Resolve(c *Command, tokens []string) (*Command, *Invocation, error) {
	inv := newInvocation()

	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			name, value, isOption := splitFlagToken(token)
			if isOption {
				opt := c.findOption(name)
				if opt == nil {
					return nil, nil, unknownOptionError(c, token)
				}
				inv.Options[opt.Longhand] = value
				continue
			}
			sw := c.findSwitch(name)
			if sw == nil {
				return nil, nil, unknownSwitchError(c, token)
			}
			inv.Switches[sw.Longhand] = true
			continue
		}

		if sub := c.findSubcommand(token); sub != nil {
			sub.parent = c
			return Resolve(sub, tokens[i+1:])
		}
		inv.Args = append(inv.Args, token)
	}

	return c, inv, nil
}

// Execute resolves tokens against the tree and runs the terminal
// command. This is the dispatch entry point for a live invocation.
//
// A leading help token (-h, --help, help) at any subcommand level prints
// that command's help instead of dispatching.
func Execute(ctx context.Context, c *Command, tokens []string) error {
	if len(tokens) > 0 && isHelpToken(tokens[0]) {
		c.PrintHelp(os.Stderr)
		return nil
	}

	// Peel off leading subcommand tokens here rather than in Resolve so
	// that each level gets its own help check.
	if len(tokens) > 0 && !strings.HasPrefix(tokens[0], "-") {
		if sub := c.findSubcommand(tokens[0]); sub != nil {
			sub.parent = c
			return Execute(ctx, sub, tokens[1:])
		}
	}

	terminal, inv, err := Resolve(c, tokens)
	if err != nil {
		return err
	}

	if terminal.Run == nil {
		terminal.PrintHelp(os.Stderr)
		if len(terminal.Subcommands) > 0 {
			// The first leftover positional was most likely a misspelled
			// subcommand name.
			if len(inv.Args) > 0 {
				name := inv.Args[0]
				if suggestion := suggestCommand(name, terminal.Subcommands); suggestion != "" {
					return fmt.Errorf("unknown command %q (did you mean %q?)", name, suggestion)
				}
				return fmt.Errorf("unknown command %q", name)
			}
			return errors.New("subcommand required")
		}
		return fmt.Errorf("no action defined for %q", terminal.fullName())
	}

	return terminal.Run(ctx, inv)
}

// isHelpToken returns true for common help argument variants.
func isHelpToken(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
