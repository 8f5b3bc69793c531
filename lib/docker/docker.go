// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

// Package docker shells out to the docker CLI binary. Boxshell keeps no
// connection to the daemon socket; everything goes through the same
// executable the user already has configured, so contexts, remote
// daemons, and podman's docker shim all work unchanged.
package docker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Container describes one container as reported by "docker ps".
type Container struct {
	// Name is the container name without the leading slash.
	Name string
	// Image is the image reference the container was created from.
	Image string
	// Status is the human-readable status line (e.g. "Up 3 hours",
	// "Exited (0) 2 days ago").
	Status string
}

// Running reports whether the status line indicates a live container.
func (c Container) Running() bool {
	return strings.HasPrefix(c.Status, "Up")
}

// Client invokes docker commands through the docker CLI.
type Client struct {
	// Binary is the docker executable to run, usually "docker".
	Binary string
}

// psFormat keeps ps output parseable: one container per line,
// tab-separated fields.
const psFormat = "{{.Names}}\t{{.Image}}\t{{.Status}}"

// List returns the containers known to the daemon, in ps order. With
// all set, stopped containers are included.
func (cl Client) List(ctx context.Context, all bool) ([]Container, error) {
	args := []string{"ps", "--format", psFormat}
	if all {
		args = append(args, "--all")
	}

	output, err := exec.CommandContext(ctx, cl.Binary, args...).Output()
	if err != nil {
		return nil, commandError(cl.Binary+" ps", err)
	}
	return parseContainerList(output), nil
}

// commandError wraps a CLI failure, surfacing what the command printed
// on stderr. Output's bare *exec.ExitError says only "exit status 1";
// the daemon's actual complaint is in the captured stderr.
func commandError(op string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
			return fmt.Errorf("%s: %w: %s", op, err, stderr)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// parseContainerList splits ps output into containers. Lines without
// all three fields are skipped; docker occasionally emits warnings on
// stdout ahead of the listing.
func parseContainerList(output []byte) []Container {
	var containers []Container
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 3 {
			continue
		}
		containers = append(containers, Container{
			Name:   fields[0],
			Image:  fields[1],
			Status: fields[2],
		})
	}
	return containers
}

// Names returns the container names in listing order.
func Names(containers []Container) []string {
	names := make([]string, len(containers))
	for i, container := range containers {
		names[i] = container.Name
	}
	return names
}

// Shell attaches an interactive shell inside the named container,
// wiring the current process's terminal straight through. With asRoot
// set, the shell runs as uid 0 regardless of the image's default user.
// The returned error carries the shell's own exit status via
// *exec.ExitError.
func (cl Client) Shell(ctx context.Context, container, shell string, asRoot bool) error {
	args := []string{"exec", "-it"}
	if asRoot {
		args = append(args, "--user", "0")
	}
	args = append(args, container, shell)

	cmd := exec.CommandContext(ctx, cl.Binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
