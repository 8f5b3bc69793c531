// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the boxshell build version from the
// information the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Full returns a human-readable version string: the module version when
// built from a tagged release, plus the VCS revision when available
// (e.g. "v1.2.0 (3f9c1a2b4d6e)" or "devel (3f9c1a2b4d6e-dirty)").
func Full() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	release := info.Main.Version
	if release == "" || release == "(devel)" {
		release = "devel"
	}

	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				modified = "-dirty"
			}
		}
	}
	if revision == "" {
		return release
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	return fmt.Sprintf("%s (%s%s)", release, revision, modified)
}
