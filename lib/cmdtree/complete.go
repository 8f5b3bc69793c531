// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"context"
	"fmt"
	"strings"
)

// Complete computes the tab-completion hints for a partially typed
// invocation. tokens is the whitespace-split command line after the
// program name; trailingSpace reports whether the cursor sits after a
// space (the last word is finished) or inside the last word.
//
// Hints follow one formatting rule everywhere: a hint naming a switch,
// subcommand, or positional-argument value carries one trailing space
// ("this word is complete, keep typing"); a hint naming an option is
// emitted as "--name=" or "-n=" with no trailing space, so the cursor
// lands directly after the '=', ready for a value.
//
// Duplicate hints are allowed; a shell completion consumer collapses
// them. The engine never mutates the tree. The only error condition is a
// value completion ("--name=partial") against an undeclared option name,
// mirroring the dispatcher's [ErrUnknownOption].
func Complete(ctx context.Context, c *Command, tokens []string, trailingSpace bool) ([]string, error) {
	if len(tokens) == 0 {
		return allHints(ctx, c), nil
	}

	for i, token := range tokens {
		isLastWord := i == len(tokens)-1

		if strings.HasPrefix(token, "-") {
			if !isLastWord {
				// Only the last word is ever completed against; earlier
				// flag tokens are skipped without validation.
				continue
			}
			if trailingSpace {
				// A finished flag word cannot be followed by a
				// subcommand in this grammar: offer flags and
				// positional values only.
				return flagAndArgHints(ctx, c), nil
			}
			if strings.Contains(token, "=") {
				return optionValueHints(c, token)
			}
			return flagHintsMatching(c, token), nil
		}

		if !isLastWord {
			if sub := c.findSubcommand(token); sub != nil {
				return Complete(ctx, sub, tokens[i+1:], trailingSpace)
			}
			// A settled positional argument; keep scanning.
			continue
		}

		if trailingSpace {
			if sub := c.findSubcommand(token); sub != nil {
				// The subcommand name is fully typed: emit its own
				// base hint set.
				return Complete(ctx, sub, nil, trailingSpace)
			}
			return allHints(ctx, c), nil
		}

		return wordHintsMatching(ctx, c, token), nil
	}

	// Unreachable: the last token always returns above.
	return nil, nil
}

// spaced marks a hint as a complete word.
func spaced(hint string) string {
	return hint + " "
}

// allHints is the base hint set of a command: subcommand names, option
// headers, switch headers, then dynamic positional-argument values.
func allHints(ctx context.Context, c *Command) []string {
	var hints []string
	for _, sub := range c.Subcommands {
		hints = append(hints, spaced(sub.Name))
	}
	for _, opt := range c.Options {
		hints = append(hints, opt.headers()...)
	}
	for _, sw := range c.Switches {
		for _, header := range sw.headers() {
			hints = append(hints, spaced(header))
		}
	}
	return append(hints, argHints(ctx, c, "")...)
}

// flagAndArgHints is the hint set offered after a finished flag word:
// the full switch and option header sets plus dynamic positional values,
// but no subcommand names.
func flagAndArgHints(ctx context.Context, c *Command) []string {
	var hints []string
	for _, sw := range c.Switches {
		for _, header := range sw.headers() {
			hints = append(hints, spaced(header))
		}
	}
	for _, opt := range c.Options {
		hints = append(hints, opt.headers()...)
	}
	return append(hints, argHints(ctx, c, "")...)
}

// optionValueHints completes the value of a half-typed option token
// ("--name=partial"): every declared tab value whose prefix matches the
// partial value. An undeclared option name is a hard error; there is no
// value set to complete from.
func optionValueHints(c *Command, token string) ([]string, error) {
	name, partial, _ := splitFlagToken(token)
	opt := c.findOption(name)
	if opt == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, token)
	}

	var hints []string
	for _, value := range opt.TabValues {
		if strings.HasPrefix(value, partial) {
			hints = append(hints, spaced(value))
		}
	}
	return hints, nil
}

// flagHintsMatching completes a half-typed flag word against every
// switch and option header (long and short forms) with a matching
// prefix.
func flagHintsMatching(c *Command, token string) []string {
	var hints []string
	for _, sw := range c.Switches {
		for _, header := range sw.headers() {
			if strings.HasPrefix(header, token) {
				hints = append(hints, spaced(header))
			}
		}
	}
	for _, opt := range c.Options {
		for _, header := range opt.headers() {
			if strings.HasPrefix(header, token) {
				hints = append(hints, header)
			}
		}
	}
	return hints
}

// wordHintsMatching completes a half-typed bare word: subcommand names
// and dynamic positional values with a matching prefix.
func wordHintsMatching(ctx context.Context, c *Command, token string) []string {
	var hints []string
	for _, sub := range c.Subcommands {
		if strings.HasPrefix(sub.Name, token) {
			hints = append(hints, spaced(sub.Name))
		}
	}
	return append(hints, argHints(ctx, c, token)...)
}

// argHints queries the command's dynamic positional-argument provider
// and returns the values matching the typed prefix. The provider call is
// synchronous; a slow provider stalls the completion pass.
func argHints(ctx context.Context, c *Command, prefix string) []string {
	if c.Args == nil {
		return nil
	}

	var hints []string
	for _, value := range c.Args(ctx) {
		if strings.HasPrefix(value, prefix) {
			hints = append(hints, spaced(value))
		}
	}
	return hints
}
