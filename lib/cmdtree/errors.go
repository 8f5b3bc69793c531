// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandConfig indicates a malformed command tree: duplicate
	// names, bad shorthand, or flags declared on a routing node. Raised
	// by Validate before the tree accepts any input.
	ErrCommandConfig = errors.New("invalid command configuration")

	// ErrUnknownOption indicates a --name=value token whose name is not
	// declared on the command being matched.
	ErrUnknownOption = errors.New("unknown option")

	// ErrUnknownSwitch indicates a --name token whose name is not
	// declared on the command being matched.
	ErrUnknownSwitch = errors.New("unknown switch")
)

// unknownOptionError builds the user-facing error for an unrecognized
// option token, with a did-you-mean suggestion when one of the command's
// declared flags is close.
func unknownOptionError(c *Command, token string) error {
	name, _, _ := splitFlagToken(token)
	if suggestion := suggestFlag(name, c.Options, c.Switches); suggestion != "" {
		return fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownOption, token, suggestion)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOption, token)
}

// unknownSwitchError is the switch counterpart of unknownOptionError.
func unknownSwitchError(c *Command, token string) error {
	name, _, _ := splitFlagToken(token)
	if suggestion := suggestFlag(name, c.Options, c.Switches); suggestion != "" {
		return fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownSwitch, token, suggestion)
	}
	return fmt.Errorf("%w: %q", ErrUnknownSwitch, token)
}

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command's Run function returns an ExitError,
// the binary exits with the specified code without printing the error
// string; the command is expected to have already written its own
// output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. The binary's main function checks for
// this interface on returned errors to distinguish "handled non-zero
// exit" from "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
