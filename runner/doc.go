// File: doc.go
// Title: Goldenscript Runner Package Documentation
// Description: Documents the Runner executor contract and the generation
//              engine that renders script output from a live runner.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial runner package

/*
Package runner executes goldenscripts against a user-supplied Runner and
renders the complete script output.

A Runner implements the actual behavior of script commands via Run, plus six
lifecycle hooks bracketing the script, each block, and each command. Embed
Hooks to pick up no-op hook implementations:

	type EchoRunner struct {
		runner.Hooks
	}

	func (r *EchoRunner) Run(cmd *ast.Command) (string, error) {
		var args []string
		for _, arg := range cmd.Args {
			args = append(args, arg.Value)
		}
		return strings.Join(args, " "), nil
	}

Generate parses the input script, executes every command in order, and
returns the rendered script with all output sections regenerated. Commands
marked with "!" must fail: their error (or panic) is rendered as output, while
failures of unmarked commands abort generation.
*/
package runner
