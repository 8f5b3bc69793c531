// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/boxshell-dev/boxshell/lib/cmdtree"
	"github.com/boxshell-dev/boxshell/lib/config"
	"github.com/boxshell-dev/boxshell/lib/docker"
)

var (
	listHeaderStyle  = lipgloss.NewStyle().Bold(true)
	listRunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	listStoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func listCommand(cfg config.Config, logger *slog.Logger) *cmdtree.Command {
	client := docker.Client{Binary: cfg.Docker}

	return &cmdtree.Command{
		Name:    "list",
		Summary: "List containers",
		Usage:   "boxshell list [flags]",
		Switches: []cmdtree.Switch{
			{Longhand: "all", Shorthand: "a", Summary: "include stopped containers"},
		},
		Run: func(ctx context.Context, inv *cmdtree.Invocation) error {
			if len(inv.Args) > 0 {
				return fmt.Errorf("unexpected argument: %s", inv.Args[0])
			}

			all := inv.Switch("all") || cfg.ListAll
			containers, err := client.List(ctx, all)
			if err != nil {
				return err
			}
			logger.Debug("listed containers", "count", len(containers), "all", all)

			if len(containers) == 0 {
				fmt.Fprintln(os.Stderr, "No containers found.")
				return nil
			}

			styled := term.IsTerminal(int(os.Stdout.Fd()))
			renderContainerList(os.Stdout, containers, styled)
			return nil
		},
	}
}

// renderContainerList writes a container table to w. With styled set
// (stdout is a terminal), the header is bold and statuses are colored
// by liveness; piped output stays plain so scripts can parse it.
func renderContainerList(w io.Writer, containers []docker.Container, styled bool) {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)

	header := "NAME\tIMAGE\tSTATUS"
	if styled {
		header = listHeaderStyle.Render("NAME") + "\t" +
			listHeaderStyle.Render("IMAGE") + "\t" +
			listHeaderStyle.Render("STATUS")
	}
	fmt.Fprintln(tw, header)

	for _, container := range containers {
		status := container.Status
		if styled {
			if container.Running() {
				status = listRunningStyle.Render(status)
			} else {
				status = listStoppedStyle.Render(status)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", container.Name, container.Image, status)
	}
	tw.Flush()
}
