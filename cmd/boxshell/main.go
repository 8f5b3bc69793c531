// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/boxshell-dev/boxshell/lib/cmdtree"
	"github.com/boxshell-dev/boxshell/lib/config"
)

func main() {
	if err := run(); err != nil {
		// Commands that speak for themselves (like an exiting container
		// shell) return an ExitError with the desired code. Don't print
		// a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("BOXSHELL_CONFIG"))
	if err != nil {
		return err
	}
	aliases, err := config.LoadAliases(cfg.AliasFile)
	if err != nil {
		return err
	}

	logger := cmdtree.NewCommandLogger().With("command", "boxshell")
	return cmdtree.Run(context.Background(), Root(cfg, aliases, logger), os.Args[1:])
}
