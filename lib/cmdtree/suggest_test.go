// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"enter", "", 5},
		{"", "list", 4},
		{"enter", "enter", 0},
		{"entr", "enter", 1},
		{"etner", "enter", 2},
		{"shell", "shall", 1},
		{"kitten", "sitting", 3},
	}

	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "enter"}, {Name: "list"}, {Name: "version"}}

	if got := suggestCommand("entr", commands); got != "enter" {
		t.Errorf("suggestCommand(entr) = %q, want %q", got, "enter")
	}
	if got := suggestCommand("lst", commands); got != "list" {
		t.Errorf("suggestCommand(lst) = %q, want %q", got, "list")
	}
	// Nothing within the distance threshold.
	if got := suggestCommand("zzzzzzzzz", commands); got != "" {
		t.Errorf("suggestCommand(zzzzzzzzz) = %q, want no suggestion", got)
	}
}

func TestSuggestFlag(t *testing.T) {
	options := []Option{{Longhand: "shell", Shorthand: "s"}}
	switches := []Switch{{Longhand: "readonly", Shorthand: "r"}}

	if got := suggestFlag("shel", options, switches); got != "--shell" {
		t.Errorf("suggestFlag(shel) = %q, want %q", got, "--shell")
	}
	if got := suggestFlag("readnoly", options, switches); got != "--readonly" {
		t.Errorf("suggestFlag(readnoly) = %q, want %q", got, "--readonly")
	}
	if got := suggestFlag("wwwwwwww", options, switches); got != "" {
		t.Errorf("suggestFlag(wwwwwwww) = %q, want no suggestion", got)
	}
}

func TestSuggestFlag_ShorthandPrefix(t *testing.T) {
	options := []Option{{Longhand: "shell", Shorthand: "s"}}

	// A near-miss of a single-character name is formatted with a single
	// hyphen.
	if got := suggestFlag("x", options, nil); got != "-s" {
		t.Errorf("suggestFlag(x) = %q, want %q", got, "-s")
	}
}
