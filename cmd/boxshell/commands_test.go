// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/boxshell-dev/boxshell/lib/cmdtree"
	"github.com/boxshell-dev/boxshell/lib/config"
	"github.com/boxshell-dev/boxshell/lib/docker"
)

func testRoot(t *testing.T) *cmdtree.Command {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	aliases := []config.Alias{{Name: "web", Container: "acme-web-1"}}
	return Root(config.Default(), aliases, logger)
}

func TestRoot_TreeIsValid(t *testing.T) {
	if err := cmdtree.Validate(testRoot(t)); err != nil {
		t.Errorf("Validate(Root()) = %v, want nil", err)
	}
}

func TestRoot_SubcommandCompletion(t *testing.T) {
	// Partial subcommand completion walks only static tree data; it
	// never invokes the docker-backed argument providers.
	hints, err := cmdtree.Complete(context.Background(), testRoot(t), []string{"li"}, false)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if !reflect.DeepEqual(hints, []string{"list "}) {
		t.Errorf("hints = %q, want [\"list \"]", hints)
	}
}

func TestRoot_ShellValueCompletion(t *testing.T) {
	hints, err := cmdtree.Complete(context.Background(), testRoot(t), []string{"enter", "--shell="}, false)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if !reflect.DeepEqual(hints, []string{"bash ", "sh "}) {
		t.Errorf("hints = %q, want configured shells", hints)
	}
}

func TestEnter_RequiresExactlyOneContainer(t *testing.T) {
	err := cmdtree.Execute(context.Background(), testRoot(t), []string{"enter"})
	if err == nil || !strings.Contains(err.Error(), "exactly one container") {
		t.Errorf("Execute(enter) = %v, want argument-count error", err)
	}

	err = cmdtree.Execute(context.Background(), testRoot(t), []string{"enter", "a", "b"})
	if err == nil || !strings.Contains(err.Error(), "exactly one container") {
		t.Errorf("Execute(enter a b) = %v, want argument-count error", err)
	}
}

func TestRenderContainerList_Plain(t *testing.T) {
	containers := []docker.Container{
		{Name: "web", Image: "nginx:1.27", Status: "Up 3 hours"},
		{Name: "worker", Image: "acme/worker", Status: "Exited (0) 5 minutes ago"},
	}

	var buffer bytes.Buffer
	renderContainerList(&buffer, containers, false)
	output := buffer.String()

	for _, want := range []string{
		"NAME", "IMAGE", "STATUS",
		"web", "nginx:1.27", "Up 3 hours",
		"worker", "Exited (0) 5 minutes ago",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("list output missing %q\n\nFull output:\n%s", want, output)
		}
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("list output has %d lines, want 3:\n%s", len(lines), output)
	}
}
