// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
docker: podman
default_shell: zsh
shells: [zsh, bash, sh]
list_all: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Docker != "podman" {
		t.Errorf("Docker = %q, want %q", cfg.Docker, "podman")
	}
	if cfg.DefaultShell != "zsh" {
		t.Errorf("DefaultShell = %q, want %q", cfg.DefaultShell, "zsh")
	}
	if !reflect.DeepEqual(cfg.Shells, []string{"zsh", "bash", "sh"}) {
		t.Errorf("Shells = %v, want [zsh bash sh]", cfg.Shells)
	}
	if !cfg.ListAll {
		t.Error("ListAll = false, want true")
	}
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "docker: podman\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Docker != "podman" {
		t.Errorf("Docker = %q, want %q", cfg.Docker, "podman")
	}
	if cfg.DefaultShell != Default().DefaultShell {
		t.Errorf("DefaultShell = %q, want default %q", cfg.DefaultShell, Default().DefaultShell)
	}
}

func TestLoad_EmptyFileIsDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(empty) = %+v, want defaults", cfg)
	}
}

func TestLoad_UnknownFieldIsError(t *testing.T) {
	path := writeFile(t, "config.yaml", "dokcer: podman\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil, want error for unknown field")
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() = nil, want error for missing explicit config")
	}
}

func TestLoadAliases(t *testing.T) {
	path := writeFile(t, "aliases.jsonc", `[
  // production web frontend
  {"name": "web", "container": "acme-web-1"},
  {"name": "db", "container": "acme-postgres-1", "shell": "sh"}, // trailing comma ok
]`)

	aliases, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases() error: %v", err)
	}
	want := []Alias{
		{Name: "web", Container: "acme-web-1"},
		{Name: "db", Container: "acme-postgres-1", Shell: "sh"},
	}
	if !reflect.DeepEqual(aliases, want) {
		t.Errorf("LoadAliases() = %+v, want %+v", aliases, want)
	}
}

func TestLoadAliases_MissingFileIsEmpty(t *testing.T) {
	aliases, err := LoadAliases(filepath.Join(t.TempDir(), "absent.jsonc"))
	if err != nil {
		t.Fatalf("LoadAliases() error: %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("LoadAliases() = %v, want empty", aliases)
	}
}

func TestLoadAliases_RejectsIncompleteEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "missing name",
			content: `[{"container": "acme-web-1"}]`,
			wantMsg: "has no name",
		},
		{
			name:    "missing container",
			content: `[{"name": "web"}]`,
			wantMsg: "has no container",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFile(t, "aliases.jsonc", test.content)
			_, err := LoadAliases(path)
			if err == nil {
				t.Fatal("LoadAliases() = nil, want error")
			}
			if !strings.Contains(err.Error(), test.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), test.wantMsg)
			}
		})
	}
}
