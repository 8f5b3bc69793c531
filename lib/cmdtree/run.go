// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"context"
	"fmt"
	"io"
	"os"
)

const (
	// completionSentinel routes an invocation to the completion engine.
	// The bash hook emitted by BashScript passes it as the first
	// argument, followed by the trailing-space marker (0 or 1) and the
	// typed words.
	completionSentinel = "--autocomplete-help"

	// scriptSentinel asks the program to print its shell-integration
	// script and exit.
	scriptSentinel = "--generate-autocomplete-file"
)

// Run is the process entry point for a binary embedding a command tree.
// It validates the tree once, then routes on a sentinel first argument:
//
//   - "--autocomplete-help <0|1> <token>...": run the completion engine
//     and print one hint per line to stdout;
//   - "--generate-autocomplete-file": print the bash integration script
//     to stdout;
//   - anything else: dispatch the full argument list.
func Run(ctx context.Context, root *Command, args []string) error {
	return run(ctx, root, args, os.Stdout)
}

func run(ctx context.Context, root *Command, args []string, stdout io.Writer) error {
	if err := Validate(root); err != nil {
		return err
	}

	if len(args) > 0 {
		switch args[0] {
		case scriptSentinel:
			fmt.Fprint(stdout, BashScript(root.Name))
			return nil
		case completionSentinel:
			return runCompletion(ctx, root, args[1:], stdout)
		}
	}

	return Execute(ctx, root, args)
}

// runCompletion parses the sentinel's payload (trailing-space marker
// followed by the typed tokens), runs the completion engine, and prints
// the hints newline-joined. On error nothing is printed: the shell gets
// either hints or a failure, never a mix.
func runCompletion(ctx context.Context, root *Command, args []string, stdout io.Writer) error {
	trailingSpace := len(args) > 0 && args[0] == "1"

	var tokens []string
	if len(args) > 1 {
		tokens = args[1:]
	}

	hints, err := Complete(ctx, root, tokens, trailingSpace)
	if err != nil {
		return err
	}

	for _, hint := range hints {
		fmt.Fprintln(stdout, hint)
	}
	return nil
}
