// File: nodes.go
// Title: Goldenscript AST Node Definitions
// Description: Defines the Block, Command, and Argument types produced by the
//              goldenscript parser, including script-syntax re-rendering and
//              order-preserving argument partitioning helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"
)

// Block represents one input/output section of a goldenscript. It holds the
// parsed commands of the input section and the verbatim literal text of that
// section (including blank and comment lines), which the generation engine
// reproduces unchanged.
type Block struct {
	Commands   []*Command // Parsed commands, in source order
	Literal    string     // Verbatim text of the command section
	LineNumber int        // Line where the block begins (1-based)
}

// Command represents a single parsed command line.
type Command struct {
	Name       string     // Command name, never empty
	Args       []Argument // Arguments, in source order
	Prefix     string     // Output prefix ("" if none)
	Silent     bool       // Output suppressed at render time
	Fail       bool       // Expected to fail with an error or panic
	Tags       []string   // Bracketed tags, opaque to the engine
	LineNumber int        // Source line of the command (1-based)
}

// Argument represents one command argument, either positional (Key empty) or
// key/value. Duplicate keys are allowed by the parser; runners decide how to
// handle them.
type Argument struct {
	Key   string // "" for positional arguments
	Value string // May be empty
}

// HasKey reports whether the argument is a key/value argument.
func (a Argument) HasKey() bool {
	return a.Key != ""
}

// String re-renders the argument in script syntax, quoting where needed.
func (a Argument) String() string {
	if a.HasKey() {
		return fmt.Sprintf("%s=%s", QuoteString(a.Key), QuoteString(a.Value))
	}
	return QuoteString(a.Value)
}

// PosArgs returns the positional arguments in source order.
func (c *Command) PosArgs() []Argument {
	args := make([]Argument, 0, len(c.Args))
	for _, arg := range c.Args {
		if !arg.HasKey() {
			args = append(args, arg)
		}
	}
	return args
}

// KeyArgs returns the key/value arguments in source order.
func (c *Command) KeyArgs() []Argument {
	args := make([]Argument, 0, len(c.Args))
	for _, arg := range c.Args {
		if arg.HasKey() {
			args = append(args, arg)
		}
	}
	return args
}

// String re-renders the command in script syntax. The rendering is normalized
// (single spaces, canonical quoting) rather than byte-identical to the source.
func (c *Command) String() string {
	var sb strings.Builder

	if c.Silent {
		sb.WriteString("(")
	}
	if c.Prefix != "" {
		sb.WriteString(QuoteString(c.Prefix))
		sb.WriteString(": ")
	}
	if c.Fail {
		sb.WriteString("! ")
	}
	sb.WriteString(QuoteString(c.Name))

	for _, arg := range c.Args {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}

	if len(c.Tags) > 0 {
		quoted := make([]string, len(c.Tags))
		for i, tag := range c.Tags {
			quoted[i] = QuoteString(tag)
		}
		sb.WriteString(" [")
		sb.WriteString(strings.Join(quoted, ", "))
		sb.WriteString("]")
	}

	if c.Silent {
		sb.WriteString(")")
	}
	return sb.String()
}

// QuoteString renders s as a goldenscript string literal: bare if it is a
// valid unquoted string, double-quoted with escapes otherwise.
func QuoteString(s string) string {
	if IsUnquotable(s) {
		return s
	}

	var sb strings.Builder
	sb.WriteString(`"`)
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case 0:
			sb.WriteString(`\0`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

// IsUnquotable reports whether s can be written as a bare (unquoted) string:
// an alphanumeric or underscore first byte, then alphanumerics or _ - . / @.
func IsUnquotable(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '_':
		case i > 0 && (ch == '-' || ch == '.' || ch == '/' || ch == '@'):
		default:
			return false
		}
	}
	return true
}
