// File: parser.go
// Title: Goldenscript Recursive Descent Parser
// Description: Converts goldenscript text into an ordered list of ast.Block
//              values. Implements the block/command grammar on top of the
//              scanner primitives with explicit position tracking, and
//              consumes (but discards) each block's output section so the
//              generation engine can regenerate it from scratch.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strings"

	mdwlog "github.com/msto63/mDW/foundation/core/log"

	gsast "github.com/msto63/goldenscript/ast"
)

// DefaultMaxScriptSize bounds script input length unless overridden.
const DefaultMaxScriptSize = 1 << 20

// Parser parses goldenscript text into blocks.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior.
type Options struct {
	Logger        *mdwlog.Logger
	MaxScriptSize int
}

// ParseError represents a script syntax error with position information and a
// source snippet.
type ParseError struct {
	Message string
	Line    int // 1-based
	Column  int // 1-based, in runes
	Snippet string
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s\n%s\n%s^",
		pe.Line, pe.Column, pe.Message, pe.Snippet, strings.Repeat(" ", pe.Column-1))
}

// New creates a new goldenscript parser with the given options.
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxScriptSize == 0 {
		opts.MaxScriptSize = DefaultMaxScriptSize
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "goldenscript-parser"),
		options: opts,
	}, nil
}

// Parse parses a complete goldenscript into its blocks.
func (p *Parser) Parse(input string) ([]*gsast.Block, error) {
	if len(input) > p.options.MaxScriptSize {
		return nil, fmt.Errorf("script exceeds maximum size: %d > %d",
			len(input), p.options.MaxScriptSize)
	}

	p.logger.Debug("Parsing goldenscript", mdwlog.Fields{
		"length": len(input),
	})

	blocks, err := parseBlocks(newScanner(input))
	if err != nil {
		p.logger.Warn("Goldenscript parsing failed", mdwlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Goldenscript parsed", mdwlog.Fields{
		"blocks": len(blocks),
	})
	return blocks, nil
}

// ParseCommand parses a single command line. It is primarily a convenience
// for tests and runners that accept command syntax outside of a script.
func (p *Parser) ParseCommand(input string) (*gsast.Command, error) {
	s := newScanner(input)
	cmd, err := parseCommand(s)
	if err != nil {
		return nil, err
	}
	if !s.eof() {
		return nil, s.errorAt(s.pos, "unexpected input after command")
	}
	return cmd, nil
}

// Parse parses a goldenscript using a default parser.
func Parse(input string) ([]*gsast.Block, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// parseBlocks parses blocks until EOF.
func parseBlocks(s *scanner) ([]*gsast.Block, error) {
	var blocks []*gsast.Block
	for !s.eof() {
		block, err := parseBlock(s)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// parseBlock parses one block: a command section, a --- separator, and an
// output section. The output content is consumed but discarded; the engine
// regenerates it. A final comment-only block without commands is allowed and
// retained for its literal.
func parseBlock(s *scanner) (*gsast.Block, error) {
	start := s.pos
	line, _ := s.position(start)

	commands, err := parseCommands(s)
	if err != nil {
		return nil, err
	}

	block := &gsast.Block{
		Commands:   commands,
		Literal:    s.input[start:s.pos],
		LineNumber: line,
	}

	// Trailing comment/blank-only text forms a block without commands.
	if s.eof() && len(block.Commands) == 0 {
		return block, nil
	}

	if err := parseSeparator(s); err != nil {
		return nil, err
	}
	consumeOutput(s)

	return block, nil
}

// parseCommands parses the command section of a block: blank/comment lines
// and command lines, up to the separator (requiring at least one command) or
// EOF (the caller handles the zero-command case).
func parseCommands(s *scanner) ([]*gsast.Command, error) {
	var commands []*gsast.Command
	for {
		if s.skipBlankOrCommentLine() {
			continue
		}
		if s.eof() {
			return commands, nil
		}
		if len(commands) > 0 && atSeparator(s) {
			return commands, nil
		}

		command, err := parseCommand(s)
		if err != nil {
			return nil, err
		}
		commands = append(commands, command)
	}
}

// atSeparator reports whether a --- separator line is next.
func atSeparator(s *scanner) bool {
	rest := s.input[s.pos:]
	if !strings.HasPrefix(rest, "---") {
		return false
	}
	rest = rest[3:]
	return rest == "" || strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n")
}

// parseSeparator consumes a --- separator and its line terminator (or EOF).
func parseSeparator(s *scanner) error {
	if !s.consume("---") {
		return s.errorAt(s.pos, "expected '---' separator")
	}
	if !s.eof() && !s.consumeLineEnding() {
		return s.errorAt(s.pos, "unexpected input after '---' separator")
	}
	return nil
}

// consumeOutput consumes a block's output section: everything up to and
// including the first blank line, or EOF. The no-output case, where the
// separator is immediately followed by a terminator or EOF, is special cased.
func consumeOutput(s *scanner) {
	if s.eof() || s.consumeLineEnding() {
		return
	}
	for !s.eof() {
		save := s.pos
		if s.consumeLineEnding() {
			if s.eof() || s.consumeLineEnding() {
				return
			}
			s.pos = save
		}
		s.next()
	}
}

// parseCommand parses a single command line:
//
//	( PREFIX: ! name arg key=value [tag1, tag2] )  # comment
//
// where silencing parentheses, prefix, failure marker, arguments, tags, and
// the comment are all optional. Consumes the whole line including its
// terminator, if present.
func parseCommand(s *scanner) (*gsast.Command, error) {
	line, _ := s.position(s.pos)
	command := &gsast.Command{LineNumber: line}

	// Silencing paren.
	if s.consume("(") {
		command.Silent = true
		s.skipSpaces()
	}

	// Prefix: a string literal immediately followed by a colon. Backtracks if
	// the literal turns out to be the command name.
	save := s.pos
	if str, found, err := s.scanString(); err != nil {
		return nil, err
	} else if found && s.consume(":") {
		if str == "" {
			return nil, s.errorAt(save, "prefix cannot be empty")
		}
		command.Prefix = str
		s.skipSpaces()
	} else {
		s.pos = save
	}

	// Failure marker.
	if s.consume("!") {
		command.Fail = true
		s.skipSpaces()
	}

	// Command name.
	name, found, err := s.scanString()
	if err != nil {
		return nil, err
	}
	if !found || name == "" {
		return nil, s.errorAt(s.pos, "expected command name")
	}
	command.Name = name

	// Arguments, each preceded by at least one space.
	for {
		save := s.pos
		if s.skipSpaces() == 0 || s.peek() == '[' {
			s.pos = save
			break
		}
		arg, found, err := parseArgument(s)
		if err != nil {
			return nil, err
		}
		if !found {
			s.pos = save
			break
		}
		command.Args = append(command.Args, arg)
	}

	// Tag list, preceded by at least one space.
	save = s.pos
	if s.skipSpaces() > 0 && s.peek() == '[' {
		tags, err := parseTags(s)
		if err != nil {
			return nil, err
		}
		command.Tags = tags
	} else {
		s.pos = save
	}

	// Closing paren if silenced.
	if command.Silent {
		s.skipSpaces()
		if !s.consume(")") {
			return nil, s.errorAt(s.pos, "unterminated silencing parenthesis")
		}
	}

	// Trailing whitespace and comment, then end of line.
	s.skipSpaces()
	s.consumeComment()
	if !s.eof() && !s.consumeLineEnding() {
		return nil, s.errorAt(s.pos, "unexpected input after command")
	}

	return command, nil
}

// parseArgument parses one argument: a key=value pair if an = follows the
// first string literal, otherwise a bare positional value.
func parseArgument(s *scanner) (gsast.Argument, bool, error) {
	start := s.pos
	str, found, err := s.scanString()
	if err != nil || !found {
		return gsast.Argument{}, false, err
	}

	if !s.consume("=") {
		return gsast.Argument{Value: str}, true, nil
	}

	if str == "" {
		return gsast.Argument{}, false, s.errorAt(start, "argument key cannot be empty")
	}
	value, _, err := s.scanString() // Missing value defaults to empty.
	if err != nil {
		return gsast.Argument{}, false, err
	}
	return gsast.Argument{Key: str, Value: value}, true, nil
}

// parseTags parses a []-delimited tag list with elements separated by runs of
// commas and/or spaces. The opening bracket has not been consumed yet.
func parseTags(s *scanner) ([]string, error) {
	open := s.pos
	s.next() // [

	var tags []string
	for {
		tag, found, err := s.scanString()
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, s.errorAt(s.pos, "expected tag")
		}
		tags = append(tags, tag)

		seps := 0
		for {
			if ch := s.peek(); ch == ',' || ch == ' ' || ch == '\t' {
				s.pos++
				seps++
				continue
			}
			break
		}
		if s.consume("]") {
			return tags, nil
		}
		if s.eof() || s.atLineEnding() {
			return nil, s.errorAt(open, "unterminated tag list")
		}
		if seps == 0 {
			return nil, s.errorAt(s.pos, "expected ',' or ']' in tag list")
		}
	}
}
