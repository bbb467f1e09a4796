// File: doc.go
// Title: Goldenscript AST Package Documentation
// Description: Documents the data model produced by the goldenscript parser:
//              blocks, commands, and arguments, together with the
//              order-independent argument consumer used by runners.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial AST definitions

/*
Package ast defines the parsed representation of a goldenscript.

A goldenscript is a sequence of input/output blocks. The parser produces one
Block per input/output section; each Block holds the Commands of its command
section plus the verbatim Literal text of that section, which the generation
engine reproduces in the regenerated output.

A Command is a single instruction line:

	prefix: ! name arg key=value [tag1, tag2]

with optional prefix, failure marker, silencing parentheses, positional and
key/value arguments, and bracketed tags. Commands are created once by the
parser and never mutated afterwards.

Runners that want ergonomic, order-independent argument handling should use
Command.ConsumeArgs, which yields an ArgumentConsumer over a working copy of
the argument list:

	args := cmd.ConsumeArgs()
	message := args.NextPos()
	retry, _, err := ast.LookupParse[bool](args, "retry")
	if err != nil {
		return "", err
	}
	if err := args.RejectRest(); err != nil {
		return "", err
	}

The consumer never mutates the original Command.
*/
package ast
