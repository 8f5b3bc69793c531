// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

// Boxshell opens interactive shells inside running docker containers
// and lists what is running, with bash tab completion for subcommands,
// flags, and live container names.
//
// Usage:
//
//	boxshell enter <container> [--shell=<shell>] [--root]
//	boxshell list [--all]
//	boxshell version
//
// Install completion with:
//
//	boxshell --generate-autocomplete-file >> ~/.bashrc
//
// Configuration is read from the YAML file named by BOXSHELL_CONFIG;
// container aliases come from the JSONC file it points at. See
// lib/config for the format.
package main
