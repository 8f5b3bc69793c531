// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	// Description or summary.
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	// Usage line.
	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	// Subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	// Options and switches.
	if len(c.Options) > 0 || len(c.Switches) > 0 {
		fmt.Fprintf(w, "\nFlags:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, opt := range c.Options {
			fmt.Fprintf(tw, "  %s\t%s\n", flagHelpName("--"+opt.Longhand+"=<value>", opt.Shorthand), opt.Summary)
		}
		for _, sw := range c.Switches {
			fmt.Fprintf(tw, "  %s\t%s\n", flagHelpName("--"+sw.Longhand, sw.Shorthand), sw.Summary)
		}
		tw.Flush()
	}

	// Examples.
	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	// Footer: help hint for subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// flagHelpName formats a flag for the help listing, appending the
// shorthand form when one exists (e.g. "--shell=<value>, -s").
func flagHelpName(long, shorthand string) string {
	if shorthand == "" {
		return long
	}
	return long + ", -" + shorthand
}
