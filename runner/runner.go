// File: runner.go
// Title: Goldenscript Runner Contract
// Description: Defines the Runner interface implemented by script executors,
//              and the embeddable Hooks struct providing no-op lifecycle hook
//              implementations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial runner contract

package runner

import (
	gsast "github.com/msto63/goldenscript/ast"
)

// Runner executes goldenscript commands and observes script lifecycle events.
// The engine takes exclusive use of one Runner per script; implementations
// are free to keep state across commands and need not be safe for concurrent
// use.
type Runner interface {
	// Run executes a command and returns its output. Returning an error marks
	// the command as failed; for commands with the "!" marker the error text
	// becomes the rendered output, for all others it aborts generation. To
	// exercise error cases in scripts without the "!" marker, return the error
	// message as regular output instead.
	Run(command *gsast.Command) (string, error)

	// StartScript is called once before any block. Used for initial setup. It
	// produces no output since it runs outside any block.
	StartScript() error

	// EndScript is called once after all blocks. Used for final assertions.
	EndScript() error

	// StartBlock is called before each block's commands. Returned text is
	// prepended to the block's output.
	StartBlock() (string, error)

	// EndBlock is called after each block's commands. Returned text is
	// appended to the block's output.
	EndBlock() (string, error)

	// StartCommand is called before each command runs. Returned text is
	// prepended to the command's output.
	StartCommand(command *gsast.Command) (string, error)

	// EndCommand is called after each command runs. Returned text is appended
	// to the command's output.
	EndCommand(command *gsast.Command) (string, error)
}

// Hooks provides no-op implementations of all Runner lifecycle hooks. Embed
// it in a Runner implementation to only implement Run and the hooks of
// interest.
type Hooks struct{}

func (Hooks) StartScript() error { return nil }

func (Hooks) EndScript() error { return nil }

func (Hooks) StartBlock() (string, error) { return "", nil }

func (Hooks) EndBlock() (string, error) { return "", nil }

func (Hooks) StartCommand(*gsast.Command) (string, error) { return "", nil }

func (Hooks) EndCommand(*gsast.Command) (string, error) { return "", nil }
