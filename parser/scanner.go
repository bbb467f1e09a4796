// File: scanner.go
// Title: Goldenscript Lexical Scanner
// Description: Implements the character-level scanning primitives shared by
//              the goldenscript parser: string literals (bare and quoted,
//              with escape decoding), comments, whitespace and line endings,
//              and on-demand line/column position tracking for diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial scanner implementation

package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// scanner walks a script string byte by byte. Position state is a single
// offset, so callers can cheaply snapshot and restore it for backtracking.
// Line and column are derived on demand for error reporting only.
type scanner struct {
	input string
	pos   int // Byte offset of the next unread character
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

// eof reports whether the entire input has been consumed.
func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

// peek returns the next byte without consuming it, or 0 at EOF.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

// next consumes and returns the next byte. Must not be called at EOF.
func (s *scanner) next() byte {
	ch := s.input[s.pos]
	s.pos++
	return ch
}

// consume consumes the literal string if it is next in the input.
func (s *scanner) consume(lit string) bool {
	if strings.HasPrefix(s.input[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// skipSpaces consumes spaces and tabs, returning how many bytes were skipped.
// Line endings are significant in the grammar and are never skipped here.
func (s *scanner) skipSpaces() int {
	start := s.pos
	for !s.eof() {
		if ch := s.peek(); ch == ' ' || ch == '\t' {
			s.pos++
			continue
		}
		break
	}
	return s.pos - start
}

// consumeLineEnding consumes a \n or \r\n line terminator.
func (s *scanner) consumeLineEnding() bool {
	if s.consume("\r\n") {
		return true
	}
	return s.consume("\n")
}

// atLineEnding reports whether a line terminator or EOF is next.
func (s *scanner) atLineEnding() bool {
	return s.eof() || s.peek() == '\n' || strings.HasPrefix(s.input[s.pos:], "\r\n")
}

// consumeComment consumes a # or // comment up to (not including) the line
// terminator.
func (s *scanner) consumeComment() bool {
	if !s.consume("#") && !s.consume("//") {
		return false
	}
	for !s.eof() && s.peek() != '\n' && !strings.HasPrefix(s.input[s.pos:], "\r\n") {
		s.pos++
	}
	return true
}

// skipBlankOrCommentLine consumes one line that contains only whitespace
// and/or a comment. It fails (restoring the position) if the line holds
// anything else, and also if nothing at all was consumed, so callers looping
// over it terminate at EOF.
func (s *scanner) skipBlankOrCommentLine() bool {
	save := s.pos
	s.skipSpaces()
	s.consumeComment()
	if !s.eof() && !s.consumeLineEnding() {
		s.pos = save
		return false
	}
	if s.pos == save {
		return false
	}
	return true
}

// scanString scans a string literal, bare or quoted. The second result
// reports whether a literal starts here at all; a malformed quoted literal is
// a hard *ParseError.
func (s *scanner) scanString() (string, bool, error) {
	ch := s.peek()
	switch {
	case isBareStart(ch):
		return s.scanBareString(), true, nil
	case ch == '\'' || ch == '"':
		str, err := s.scanQuotedString(ch)
		return str, true, err
	default:
		return "", false, nil
	}
}

// scanBareString scans an unquoted string: an alphanumeric or _ first byte,
// then alphanumerics or _ - . / @.
func (s *scanner) scanBareString() string {
	start := s.pos
	s.pos++ // First byte already validated by the caller.
	for !s.eof() && isBareChar(s.peek()) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// scanQuotedString scans a string quoted with the given quote byte, decoding
// escape sequences. The quote character itself has not been consumed yet.
func (s *scanner) scanQuotedString(quote byte) (string, error) {
	// Fast path for the empty string.
	if s.consume(string([]byte{quote, quote})) {
		return "", nil
	}

	open := s.pos
	s.pos++ // Opening quote.

	var sb strings.Builder
	for {
		if s.eof() {
			return "", s.errorAt(open, "unterminated string")
		}
		ch := s.peek()
		switch {
		case ch == quote:
			s.pos++
			return sb.String(), nil
		case ch == '\\':
			s.pos++
			r, err := s.scanEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		default:
			r, size := utf8.DecodeRuneInString(s.input[s.pos:])
			sb.WriteRune(r)
			s.pos += size
		}
	}
}

// scanEscape decodes one escape sequence; the backslash has been consumed.
func (s *scanner) scanEscape() (rune, error) {
	start := s.pos - 1
	if s.eof() {
		return 0, s.errorAt(start, "unterminated escape sequence")
	}
	switch ch := s.next(); ch {
	case '\\':
		return '\\', nil
	case '\'':
		return '\'', nil
	case '"':
		return '"', nil
	case '0':
		return 0, nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'x':
		return s.scanHexEscape(start)
	case 'u':
		return s.scanUnicodeEscape(start)
	default:
		return 0, s.errorAt(start, "invalid escape sequence '\\"+string(ch)+"'")
	}
}

// scanHexEscape decodes the HH of a \xHH escape into a single codepoint in
// the range U+00..U+FF.
func (s *scanner) scanHexEscape(start int) (rune, error) {
	if s.pos+2 > len(s.input) {
		return 0, s.errorAt(start, "invalid hex escape")
	}
	digits := s.input[s.pos : s.pos+2]
	value, err := strconv.ParseUint(digits, 16, 8)
	if err != nil {
		return 0, s.errorAt(start, "invalid hex escape '\\x"+digits+"'")
	}
	s.pos += 2
	return rune(value), nil
}

// scanUnicodeEscape decodes the {H..H} of a \u{H..H} escape (1-6 hex digits)
// into a Unicode scalar value.
func (s *scanner) scanUnicodeEscape(start int) (rune, error) {
	if !s.consume("{") {
		return 0, s.errorAt(start, "invalid unicode escape")
	}
	digitStart := s.pos
	for !s.eof() && isHexDigit(s.peek()) {
		s.pos++
	}
	digits := s.input[digitStart:s.pos]
	if len(digits) < 1 || len(digits) > 6 || !s.consume("}") {
		return 0, s.errorAt(start, "invalid unicode escape")
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, s.errorAt(start, "invalid unicode escape '\\u{"+digits+"}'")
	}
	r := rune(value)
	if r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		return 0, s.errorAt(start, "invalid unicode codepoint '\\u{"+digits+"}'")
	}
	return r, nil
}

// position returns the 1-based line and column (in runes) of a byte offset.
func (s *scanner) position(pos int) (line, column int) {
	if pos > len(s.input) {
		pos = len(s.input)
	}
	lineStart := strings.LastIndexByte(s.input[:pos], '\n') + 1
	line = 1 + strings.Count(s.input[:lineStart], "\n")
	column = 1 + utf8.RuneCountInString(s.input[lineStart:pos])
	return line, column
}

// sourceLine returns the full source line containing a byte offset, without
// its terminator, for use in error snippets.
func (s *scanner) sourceLine(pos int) string {
	if pos > len(s.input) {
		pos = len(s.input)
	}
	start := strings.LastIndexByte(s.input[:pos], '\n') + 1
	end := strings.IndexByte(s.input[start:], '\n')
	if end < 0 {
		end = len(s.input)
	} else {
		end += start
	}
	return strings.TrimSuffix(s.input[start:end], "\r")
}

// errorAt builds a *ParseError located at the given byte offset.
func (s *scanner) errorAt(pos int, message string) error {
	line, column := s.position(pos)
	return &ParseError{
		Message: message,
		Line:    line,
		Column:  column,
		Snippet: s.sourceLine(pos),
	}
}

func isBareStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '_'
}

func isBareChar(ch byte) bool {
	return isBareStart(ch) || ch == '-' || ch == '.' || ch == '/' || ch == '@'
}

func isHexDigit(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}
