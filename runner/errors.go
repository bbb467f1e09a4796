// File: errors.go
// Title: Goldenscript Engine Errors
// Description: Defines the structured error types surfaced by the generation
//              engine: lifecycle hook failures and unexpected command
//              outcomes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial engine error types

package runner

import (
	"fmt"
)

// HookError reports a lifecycle hook failure. Hook failures are always fatal
// to generation.
type HookError struct {
	Hook string // Hook name: start_script, end_block, start_command, ...
	Line int    // Block or command line number; 0 for script-level hooks
	Err  error
}

func (he *HookError) Error() string {
	if he.Line > 0 {
		return fmt.Sprintf("%s failed at line %d: %s", he.Hook, he.Line, he.Err)
	}
	return fmt.Sprintf("%s failed: %s", he.Hook, he.Err)
}

func (he *HookError) Unwrap() error {
	return he.Err
}

// CommandError reports an unexpected command outcome: either a command
// without the "!" marker failed (Err is set), or a command with the marker
// succeeded (Output holds the unexpected output). Both abort generation.
type CommandError struct {
	Name   string
	Line   int
	Err    error  // Underlying failure; nil for unexpected success
	Output string // Output of an unexpected success
}

func (ce *CommandError) Error() string {
	if ce.Err != nil {
		return fmt.Sprintf("command '%s' failed at line %d: %s", ce.Name, ce.Line, ce.Err)
	}
	return fmt.Sprintf("expected command '%s' to fail at line %d, succeeded with: %s",
		ce.Name, ce.Line, ce.Output)
}

func (ce *CommandError) Unwrap() error {
	return ce.Err
}
