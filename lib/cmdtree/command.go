// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import "context"

// Command represents a CLI command or subcommand.
//
// A command either owns subcommands (a routing node) or owns options,
// switches, and a Run function (a terminal node). Mixing the two on one
// node is rejected by [Validate].
type Command struct {
	// Name is the command name as typed by the user (e.g., "enter").
	Name string

	// Summary is a one-line description shown in the parent's help listing.
	Summary string

	// Description is a detailed multi-line description shown in the
	// command's own help output.
	Description string

	// Usage is the usage string (e.g., "boxshell enter <container> [flags]").
	// If empty, it is synthesized from the command path.
	Usage string

	// Examples are shown in the help output after the description.
	Examples []Example

	// Options are the value-bearing flags this command accepts, in
	// --name=value form. Only terminal commands carry options.
	Options []Option

	// Switches are the boolean flags this command accepts. Only terminal
	// commands carry switches.
	Switches []Switch

	// Subcommands are nested commands dispatched by the first matching
	// bare argument.
	Subcommands []*Command

	// Args returns the legal positional-argument values for this command,
	// offered as tab-completion candidates. The provider may inspect live
	// system state and is called synchronously; nil means the command has
	// no positional completion.
	Args func(ctx context.Context) []string

	// Run executes the terminal command with the parsed invocation.
	// Exactly one of Run or Subcommands should be set.
	Run func(ctx context.Context, inv *Invocation) error

	// parent is set during dispatch to build the full command path for
	// help and error messages.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Invocation is the parsed form of one command-line call, handed to the
// terminal command's Run function. It is built fresh per dispatch and
// discarded after the command returns.
type Invocation struct {
	// Options maps option longhand names to their raw values. Values are
	// taken verbatim from the text after the first '=' and may themselves
	// contain '='.
	Options map[string]string

	// Switches holds the longhand names of the switches present.
	Switches map[string]bool

	// Args are the positional arguments in the order they were typed.
	Args []string
}

func newInvocation() *Invocation {
	return &Invocation{
		Options:  make(map[string]string),
		Switches: make(map[string]bool),
	}
}

// Option returns the value of the named option and whether it was set.
func (inv *Invocation) Option(longhand string) (string, bool) {
	value, ok := inv.Options[longhand]
	return value, ok
}

// Switch reports whether the named switch was present on the command line.
func (inv *Invocation) Switch(longhand string) bool {
	return inv.Switches[longhand]
}

// findSubcommand returns the subcommand with the given name, or nil.
func (c *Command) findSubcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// findOption looks up an option by longhand or shorthand name (without
// hyphens), or returns nil. The shorthand comparison is guarded so the
// empty name stripped from a bare "-"/"--" token never matches a flag
// that simply has no shorthand.
func (c *Command) findOption(name string) *Option {
	for i := range c.Options {
		if c.Options[i].Longhand == name {
			return &c.Options[i]
		}
		if c.Options[i].Shorthand != "" && c.Options[i].Shorthand == name {
			return &c.Options[i]
		}
	}
	return nil
}

// findSwitch looks up a switch by longhand or shorthand name (without
// hyphens), or returns nil. Same empty-shorthand guard as findOption.
func (c *Command) findSwitch(name string) *Switch {
	for i := range c.Switches {
		if c.Switches[i].Longhand == name {
			return &c.Switches[i]
		}
		if c.Switches[i].Shorthand != "" && c.Switches[i].Shorthand == name {
			return &c.Switches[i]
		}
	}
	return nil
}

// fullName returns the complete command path (e.g., "boxshell enter").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}
