// File: doc.go
// Title: Goldenscript Parser Package Documentation
// Description: Documents the goldenscript grammar and the recursive descent
//              parser that turns raw script text into ast.Block values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial parser implementation

/*
Package parser implements the goldenscript grammar.

A goldenscript is a sequence of blocks. Each block consists of command lines
(blank and comment lines are ignored), a "---" separator line, and an output
section terminated by a blank line or the end of the script:

	command argument key=value
	---
	output

	# Comments start with # or //.
	prefix: ! command [tag1, tag2]
	(silenced arg=value)
	---
	output

Command lines support an optional string prefix ending in ":", a "!" marker
for commands expected to fail, "(...)" silencing parentheses, positional and
key=value arguments, and a bracketed tag list. Strings are either bare words
(alphanumerics plus _ - . / @, where - . / @ may not start the word) or quoted
with ' or ", supporting the escapes \\ \' \" \0 \n \r \t \xHH and \u{...}.

The parser consumes the output section of each block but discards its content;
the generation engine regenerates all output from the parsed commands and a
live runner, so output never has to be diffed or merged in place.

All errors are *ParseError values carrying line, column, the offending source
line, and a caret marker.
*/
package parser
