// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/boxshell-dev/boxshell/lib/cmdtree"
	"github.com/boxshell-dev/boxshell/lib/config"
	"github.com/boxshell-dev/boxshell/lib/docker"
)

func enterCommand(cfg config.Config, aliases []config.Alias, logger *slog.Logger) *cmdtree.Command {
	client := docker.Client{Binary: cfg.Docker}

	return &cmdtree.Command{
		Name:    "enter",
		Summary: "Open an interactive shell inside a running container",
		Description: `Open an interactive shell inside a running container.

The target may be a container name or an alias from the alias file.
The shell defaults to the configured default shell; aliases may pin
their own.`,
		Usage: "boxshell enter <container> [flags]",
		Options: []cmdtree.Option{
			{
				Longhand:  "shell",
				Shorthand: "s",
				Summary:   "shell to launch inside the container",
				TabValues: cfg.Shells,
			},
		},
		Switches: []cmdtree.Switch{
			{Longhand: "root", Shorthand: "r", Summary: "run the shell as root"},
		},
		Examples: []cmdtree.Example{
			{
				Description: "Open a plain sh shell in the db container",
				Command:     "boxshell enter db --shell=sh",
			},
		},
		Args: func(ctx context.Context) []string {
			// Completion candidates: live container names plus alias
			// names. Failures stay off stderr (it would garble the
			// user's prompt mid-completion); aliases still complete
			// when the daemon is unreachable.
			var names []string
			containers, err := client.List(ctx, false)
			if err != nil {
				logger.Debug("container completion unavailable", "error", err)
			} else {
				names = docker.Names(containers)
			}
			for _, alias := range aliases {
				names = append(names, alias.Name)
			}
			return names
		},
		Run: func(ctx context.Context, inv *cmdtree.Invocation) error {
			if len(inv.Args) != 1 {
				return fmt.Errorf("enter takes exactly one container name, got %d arguments", len(inv.Args))
			}
			target := inv.Args[0]

			shell, shellSet := inv.Option("shell")
			if !shellSet {
				shell = cfg.DefaultShell
			}
			for _, alias := range aliases {
				if alias.Name == target {
					target = alias.Container
					if !shellSet && alias.Shell != "" {
						shell = alias.Shell
					}
					break
				}
			}

			logger.Info("entering container", "container", target, "shell", shell, "root", inv.Switch("root"))

			err := client.Shell(ctx, target, shell, inv.Switch("root"))
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				// The shell's exit status is the user's outcome, not an
				// error of ours to reprint.
				return &cmdtree.ExitError{Code: exitErr.ExitCode()}
			}
			return err
		},
	}
}
