// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import "strings"

// Option describes a value-bearing flag taken in --name=value (or
// -n=value) form. The value after '=' is passed through verbatim to the
// command; validating it is the command's business, not the framework's.
type Option struct {
	// Longhand is the flag name without hyphens (e.g. "shell" for
	// --shell). Must be non-empty.
	Longhand string

	// Shorthand is the optional single-character abbreviation (e.g. "s"
	// for -s). Empty when the option has no short form.
	Shorthand string

	// Summary is a one-line description shown in help output.
	Summary string

	// TabValues are the candidate values offered by tab completion for
	// this option, in the order they should appear.
	TabValues []string
}

// headers returns the completion headers for the option: "--name=" and,
// when a shorthand exists, "-n=". Option headers never carry a trailing
// space so the shell leaves the cursor directly after the '=', ready for
// a value.
func (o Option) headers() []string {
	headers := []string{"--" + o.Longhand + "="}
	if o.Shorthand != "" {
		headers = append(headers, "-"+o.Shorthand+"=")
	}
	return headers
}

// Switch describes a boolean flag. Its presence on the command line is
// the whole signal; it carries no value.
type Switch struct {
	// Longhand is the flag name without hyphens. Must be non-empty.
	Longhand string

	// Shorthand is the optional single-character abbreviation.
	Shorthand string

	// Summary is a one-line description shown in help output.
	Summary string
}

// headers returns the completion headers for the switch: "--name" and,
// when a shorthand exists, "-n". The completion engine appends the
// trailing space that marks a switch hint as a complete word.
func (s Switch) headers() []string {
	headers := []string{"--" + s.Longhand}
	if s.Shorthand != "" {
		headers = append(headers, "-"+s.Shorthand)
	}
	return headers
}

// splitFlagToken strips the leading hyphens from a flag token and splits
// it at the first '='. Tokens with an '=' are options; the value is
// everything after the first '=' and may itself contain '='. Tokens
// without an '=' are switches.
func splitFlagToken(token string) (name, value string, isOption bool) {
	stripped := strings.TrimLeft(token, "-")
	if idx := strings.IndexByte(stripped, '='); idx >= 0 {
		return stripped[:idx], stripped[idx+1:], true
	}
	return stripped, "", false
}
