// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boxshell-dev/boxshell/lib/cmdtree"
	"github.com/boxshell-dev/boxshell/lib/config"
	"github.com/boxshell-dev/boxshell/lib/version"
)

// Root builds the complete boxshell command tree. The configuration and
// alias set are captured by the command closures. After assembly the
// tree's declared structure is read-only; dispatch only fills in parent
// pointers to build full command paths for help output.
func Root(cfg config.Config, aliases []config.Alias, logger *slog.Logger) *cmdtree.Command {
	return &cmdtree.Command{
		Name: "boxshell",
		Description: `Boxshell: interactive shells inside running containers.

Open a shell in any running container with tab completion for
container names, shells, and flags.`,
		Subcommands: []*cmdtree.Command{
			enterCommand(cfg, aliases, logger),
			listCommand(cfg, logger),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(context.Context, *cmdtree.Invocation) error {
					fmt.Printf("boxshell %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cmdtree.Example{
			{
				Description: "Open the default shell in the web container",
				Command:     "boxshell enter web",
			},
			{
				Description: "Open a plain sh shell as root",
				Command:     "boxshell enter web --shell=sh --root",
			},
			{
				Description: "List everything, including stopped containers",
				Command:     "boxshell list --all",
			},
			{
				Description: "Install bash completion",
				Command:     "boxshell --generate-autocomplete-file >> ~/.bashrc",
			},
		},
	}
}
