// File: generator.go
// Title: Goldenscript Generation Engine
// Description: Implements output generation: executes a parsed script against
//              a Runner and renders the complete script text, including
//              output normalization, prefixing, silencing, expected-failure
//              capture, and blank-line escaping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial generation engine

package runner

import (
	"fmt"
	"strings"

	mdwlog "github.com/msto63/mDW/foundation/core/log"

	gsast "github.com/msto63/goldenscript/ast"
	"github.com/msto63/goldenscript/parser"
)

// Generator renders goldenscript output by executing scripts against a
// Runner. The zero Options value gives a generator with a default parser and
// the default logger.
type Generator struct {
	logger  *mdwlog.Logger
	parser  *parser.Parser
	options Options
}

// Options configures generation behavior.
type Options struct {
	Logger *mdwlog.Logger
	Parser *parser.Parser
}

// New creates a new generation engine with the given options.
func New(opts Options) (*Generator, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Parser == nil {
		p, err := parser.New(parser.Options{Logger: opts.Logger})
		if err != nil {
			return nil, fmt.Errorf("creating parser: %w", err)
		}
		opts.Parser = p
	}

	return &Generator{
		logger:  opts.Logger.WithField("component", "goldenscript-generator"),
		parser:  opts.Parser,
		options: opts,
	}, nil
}

// Generate parses the input script, executes it against the runner, and
// returns the complete rendered script with regenerated output sections. Any
// parse error, hook failure, or unexpected command outcome aborts generation
// with no partial output.
func (g *Generator) Generate(r Runner, input string) (string, error) {
	// Match the input's end-of-line convention throughout the output.
	eol := "\n"
	if strings.Contains(input, "\r\n") {
		eol = "\r\n"
	}

	blocks, err := g.parser.Parse(input)
	if err != nil {
		return "", err
	}

	g.logger.Debug("Generating goldenscript output", mdwlog.Fields{
		"blocks": len(blocks),
	})

	if err := r.StartScript(); err != nil {
		return "", &HookError{Hook: "start_script", Err: err}
	}

	var output strings.Builder
	output.Grow(len(input)) // Common case: output matches input.

	for i, block := range blocks {
		// A trailing block without commands holds bare comments at the end of
		// the script. Retain its literal verbatim.
		if len(block.Commands) == 0 {
			output.WriteString(block.Literal)
			continue
		}

		blockOutput, err := g.generateBlock(r, block, eol)
		if err != nil {
			return "", err
		}

		output.WriteString(block.Literal)
		output.WriteString("---")
		output.WriteString(eol)
		output.WriteString(blockOutput)
		if i < len(blocks)-1 {
			output.WriteString(eol)
		}
	}

	if err := r.EndScript(); err != nil {
		return "", &HookError{Hook: "end_script", Err: err}
	}

	return output.String(), nil
}

// generateBlock executes one block's commands and renders its output section.
func (g *Generator) generateBlock(r Runner, block *gsast.Block, eol string) (string, error) {
	text, err := r.StartBlock()
	if err != nil {
		return "", &HookError{Hook: "start_block", Line: block.LineNumber, Err: err}
	}
	blockOutput := ensureEOL(text, eol)

	for _, command := range block.Commands {
		commandOutput, err := g.generateCommand(r, command, eol)
		if err != nil {
			return "", err
		}
		blockOutput += commandOutput
	}

	text, err = r.EndBlock()
	if err != nil {
		return "", &HookError{Hook: "end_block", Line: block.LineNumber, Err: err}
	}
	blockOutput += ensureEOL(text, eol)

	// A block with no output at all still confirms its commands ran.
	if blockOutput == "" {
		blockOutput = "ok" + eol
	}

	// Blank lines inside block output would be ambiguous with the blank-line
	// block separator, so escape the whole block with a "> " line prefix.
	if strings.HasPrefix(blockOutput, "\n") || strings.HasPrefix(blockOutput, "\r\n") ||
		strings.Contains(blockOutput, "\n\n") || strings.Contains(blockOutput, "\n\r\n") {
		blockOutput = escapeBlankLines(blockOutput, eol)
	}

	return blockOutput, nil
}

// generateCommand executes one command, classifies its outcome, and renders
// its contribution to the block output.
func (g *Generator) generateCommand(r Runner, command *gsast.Command, eol string) (string, error) {
	pre, err := r.StartCommand(command)
	if err != nil {
		return "", &HookError{Hook: "start_command", Line: command.LineNumber, Err: err}
	}

	runOutput, err := g.invoke(r, command)
	if err != nil {
		return "", err
	}

	post, err := r.EndCommand(command)
	if err != nil {
		return "", &HookError{Hook: "end_command", Line: command.LineNumber, Err: err}
	}

	// Silencing discards the command's own output. Hook output survives.
	if command.Silent {
		runOutput = ""
	}

	output := ensureEOL(pre, eol) + ensureEOL(runOutput, eol) + ensureEOL(post, eol)
	if command.Prefix != "" {
		output = prefixLines(output, command.Prefix, eol)
	}
	return output, nil
}

// invoke runs a single command and classifies the outcome against its fail
// marker. Expected failures and panics become output text; unexpected ones
// abort generation. A panic on a command without the fail marker propagates
// unchanged.
func (g *Generator) invoke(r Runner, command *gsast.Command) (string, error) {
	output, err, panicValue := runCommand(r, command)

	switch {
	case panicValue != nil:
		// Only reachable with the fail marker set; runCommand does not
		// recover otherwise.
		g.logger.Debug("Command panicked as expected", mdwlog.Fields{
			"command": command.Name,
			"line":    command.LineNumber,
		})
		return fmt.Sprintf("Panic: %v", panicValue), nil

	case err != nil && command.Fail:
		return fmt.Sprintf("Error: %s", err), nil

	case err != nil:
		return "", &CommandError{Name: command.Name, Line: command.LineNumber, Err: err}

	case command.Fail:
		return "", &CommandError{Name: command.Name, Line: command.LineNumber, Output: output}

	default:
		return output, nil
	}
}

// runCommand calls Run, intercepting panics only when the command carries the
// fail marker. This is the sole recovery boundary in the engine.
func runCommand(r Runner, command *gsast.Command) (output string, err error, panicValue any) {
	if command.Fail {
		defer func() {
			if v := recover(); v != nil {
				panicValue = v
			}
		}()
	}
	output, err = r.Run(command)
	return output, err, nil
}

// ensureEOL appends a line terminator if the text is not empty and does not
// already end with one.
func ensureEOL(text, eol string) string {
	if text != "" && !strings.HasSuffix(text, "\n") {
		return text + eol
	}
	return text
}

// prefixLines prefixes every line of text with "<prefix>: ". The result ends
// with exactly one trailing terminator; empty text renders as a single
// prefixed empty line.
func prefixLines(text, prefix, eol string) string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(prefix)
		sb.WriteString(": ")
		sb.WriteString(strings.TrimSuffix(line, "\r"))
		sb.WriteString(eol)
	}
	return sb.String()
}

// escapeBlankLines prefixes every line of text with "> " (bare ">" for empty
// lines) so block output containing blank lines cannot be confused with the
// blank-line block separator. The trailing terminator is preserved exactly
// once.
func escapeBlankLines(text, eol string) string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			sb.WriteString(">")
		} else {
			sb.WriteString("> ")
			sb.WriteString(line)
		}
		sb.WriteString(eol)
	}
	return sb.String()
}

// Generate renders a goldenscript using a default engine.
func Generate(r Runner, input string) (string, error) {
	g, err := New(Options{})
	if err != nil {
		return "", err
	}
	return g.Generate(r, input)
}
