// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmdtree provides the command-line framework shared by boxshell
// binaries: a tree of named commands with value-bearing options, boolean
// switches, positional arguments, and nested subcommands.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], declared [Option] and [Switch]
// sets, a dynamic positional-argument provider, and a Run function.
// Commands are assembled into a tree by the embedding binary and handed
// to [Run], which routes a process invocation to one of three engines:
//
//   - [Execute]: resolves the argument list against the tree and invokes
//     the terminal command with a parsed [Invocation];
//   - [Complete]: computes shell tab-completion hints for a partially
//     typed invocation, walking the same tree with the same lookup rules
//     as the dispatcher;
//   - [BashScript]: emits the bash integration script that wires a
//     "complete -F" hook back to the program's completion sentinel.
//
// A tree is checked once by [Validate] before it accepts any input:
// sibling names must be distinct, shorthand names must be single
// characters that collide with nothing else on the node, and a command
// that owns subcommands owns no options or switches. Bad trees never
// reach dispatch or completion.
//
// When a user types an unknown option or switch, the framework computes
// Levenshtein edit distance against all names declared on the node and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
//
// The resolver and the completion engine are pure functions of the tree
// and the token list: they perform no I/O, keep no state between calls,
// and never mutate the tree. The only exception is the dynamic
// positional-argument provider, which a command may use to offer live
// system state (such as running container names) as completion
// candidates; the engine calls it synchronously and passes through
// whatever context the caller supplied.
package cmdtree
