// File: generator_test.go
// Title: Goldenscript Generation Engine Tests
// Description: Tests output generation against debug runners: outcome
//              classification, hooks, silencing, prefixing, blank-line
//              escaping, and end-of-line handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial generation engine tests

package runner

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gsast "github.com/msto63/goldenscript/ast"
)

// debugRunner implements a small command set for engine tests:
//
//	echo args...   outputs its arguments, one per line
//	error message  fails with the given message
//	panic message  panics with the given message
//	none           succeeds with empty output
type debugRunner struct {
	Hooks
}

func (r *debugRunner) Run(cmd *gsast.Command) (string, error) {
	switch cmd.Name {
	case "echo":
		var lines []string
		for _, arg := range cmd.Args {
			lines = append(lines, arg.Value)
		}
		return strings.Join(lines, "\n"), nil
	case "error":
		return "", errors.New(cmd.Args[0].Value)
	case "panic":
		panic(cmd.Args[0].Value)
	case "none":
		return "", nil
	default:
		return "", fmt.Errorf("unknown command '%s'", cmd.Name)
	}
}

// hookRunner counts hook invocations and optionally emits hook output or hook
// errors.
type hookRunner struct {
	debugRunner
	starts, ends           int
	blockStarts, blockEnds int
	cmdStarts, cmdEnds     int
	blockText, cmdText     bool
	failHook               string
}

func (r *hookRunner) hookErr(name string) error {
	if r.failHook == name {
		return errors.New("hook boom")
	}
	return nil
}

func (r *hookRunner) StartScript() error {
	r.starts++
	return r.hookErr("start_script")
}

func (r *hookRunner) EndScript() error {
	r.ends++
	return r.hookErr("end_script")
}

func (r *hookRunner) StartBlock() (string, error) {
	r.blockStarts++
	if r.blockText {
		return "block start", r.hookErr("start_block")
	}
	return "", r.hookErr("start_block")
}

func (r *hookRunner) EndBlock() (string, error) {
	r.blockEnds++
	if r.blockText {
		return "block end", r.hookErr("end_block")
	}
	return "", r.hookErr("end_block")
}

func (r *hookRunner) StartCommand(cmd *gsast.Command) (string, error) {
	r.cmdStarts++
	if r.cmdText {
		return "before " + cmd.Name, r.hookErr("start_command")
	}
	return "", r.hookErr("start_command")
}

func (r *hookRunner) EndCommand(cmd *gsast.Command) (string, error) {
	r.cmdEnds++
	if r.cmdText {
		return "after " + cmd.Name, r.hookErr("end_command")
	}
	return "", r.hookErr("end_command")
}

func TestGenerate_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single command",
			input: "echo hi\n---\n",
			want:  "echo hi\n---\nhi\n",
		},
		{
			name:  "stale output replaced",
			input: "echo hi\n---\nstale garbage\nmore garbage\n",
			want:  "echo hi\n---\nhi\n",
		},
		{
			name:  "multiple commands in block",
			input: "echo a\necho b\n---\n",
			want:  "echo a\necho b\n---\na\nb\n",
		},
		{
			name:  "multiple blocks separated by blank line",
			input: "echo a\n---\n\necho b\n---\n",
			want:  "echo a\n---\na\n\necho b\n---\nb\n",
		},
		{
			name:  "empty output defaults to ok",
			input: "none\n---\n",
			want:  "none\n---\nok\n",
		},
		{
			name:  "comments preserved in literal",
			input: "# header\necho hi # trailing\n---\n",
			want:  "# header\necho hi # trailing\n---\nhi\n",
		},
		{
			name:  "trailing comment block preserved",
			input: "echo hi\n---\nhi\n\n# the end\n",
			want:  "echo hi\n---\nhi\n\n# the end\n",
		},
		{
			name:  "multiline command output",
			input: "echo a b c\n---\n",
			want:  "echo a b c\n---\na\nb\nc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(&debugRunner{}, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Outcomes(t *testing.T) {
	t.Run("expected error renders as output", func(t *testing.T) {
		got, err := Generate(&debugRunner{}, "! error boom\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "! error boom\n---\nError: boom\n", got)
	})

	t.Run("expected panic renders as output", func(t *testing.T) {
		got, err := Generate(&debugRunner{}, "! panic boom\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "! panic boom\n---\nPanic: boom\n", got)
	})

	t.Run("unexpected error aborts", func(t *testing.T) {
		_, err := Generate(&debugRunner{}, "echo ok\nerror boom\n---\n")
		require.Error(t, err)
		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, "error", cmdErr.Name)
		assert.Equal(t, 2, cmdErr.Line)
		assert.EqualError(t, err, "command 'error' failed at line 2: boom")
	})

	t.Run("unexpected success aborts", func(t *testing.T) {
		_, err := Generate(&debugRunner{}, "! echo fine\n---\n")
		require.Error(t, err)
		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.NoError(t, cmdErr.Err)
		assert.Equal(t, "fine", cmdErr.Output)
		assert.EqualError(t, err, "expected command 'echo' to fail at line 1, succeeded with: fine")
	})

	t.Run("unexpected panic propagates", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() {
			_, _ = Generate(&debugRunner{}, "panic boom\n---\n")
		})
	})

	t.Run("no partial output on abort", func(t *testing.T) {
		got, err := Generate(&debugRunner{}, "echo a\n---\na\n\nerror boom\n---\n")
		require.Error(t, err)
		assert.Empty(t, got)
	})
}

func TestGenerate_Silencing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "silenced command renders nothing",
			input: "(echo hi)\necho visible\n---\n",
			want:  "(echo hi)\necho visible\n---\nvisible\n",
		},
		{
			name:  "fully silenced block defaults to ok",
			input: "(echo hi)\n---\n",
			want:  "(echo hi)\n---\nok\n",
		},
		{
			name:  "silenced expected error still must fail",
			input: "(! error boom)\n---\n",
			want:  "(! error boom)\n---\nok\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(&debugRunner{}, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Prefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line prefixed",
			input: "client1: echo hi\n---\n",
			want:  "client1: echo hi\n---\nclient1: hi\n",
		},
		{
			name:  "every output line prefixed",
			input: "a: echo 1 2 3\n---\n",
			want:  "a: echo 1 2 3\n---\na: 1\na: 2\na: 3\n",
		},
		{
			name:  "prefixed empty output renders prefix line",
			input: "a: none\n---\n",
			want:  "a: none\n---\na: \n",
		},
		{
			name:  "prefixed silenced command renders prefix line",
			input: "(a: echo hi)\n---\n",
			want:  "(a: echo hi)\n---\na: \n",
		},
		{
			name:  "prefixed expected error",
			input: "a: ! error boom\n---\n",
			want:  "a: ! error boom\n---\na: Error: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(&debugRunner{}, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_BlankLineEscaping(t *testing.T) {
	t.Run("internal blank line", func(t *testing.T) {
		got, err := Generate(&debugRunner{}, "echo line1 \"\" line2\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "echo line1 \"\" line2\n---\n> line1\n>\n> line2\n", got)
	})

	t.Run("leading blank line", func(t *testing.T) {
		got, err := Generate(&debugRunner{}, "echo \"\" line2\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "echo \"\" line2\n---\n>\n> line2\n", got)
	})

	t.Run("escaped block followed by plain block", func(t *testing.T) {
		got, err := Generate(&debugRunner{}, "echo a \"\" b\n---\n\necho c\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "echo a \"\" b\n---\n> a\n>\n> b\n\necho c\n---\nc\n", got)
	})
}

func TestGenerate_CRLF(t *testing.T) {
	got, err := Generate(&debugRunner{}, "echo a\r\n---\r\n\r\necho c\r\n---\r\n")
	require.NoError(t, err)
	assert.Equal(t, "echo a\r\n---\r\na\r\n\r\necho c\r\n---\r\nc\r\n", got)
}

func TestGenerate_EmptyScript(t *testing.T) {
	got, err := Generate(&debugRunner{}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerate_HookCounts(t *testing.T) {
	r := &hookRunner{}
	input := "echo a\necho b\n---\n\necho c\n---\n"
	_, err := Generate(r, input)
	require.NoError(t, err)

	assert.Equal(t, 1, r.starts)
	assert.Equal(t, 1, r.ends)
	assert.Equal(t, 2, r.blockStarts)
	assert.Equal(t, 2, r.blockEnds)
	assert.Equal(t, 3, r.cmdStarts)
	assert.Equal(t, 3, r.cmdEnds)
}

func TestGenerate_HookOutput(t *testing.T) {
	t.Run("block hooks bracket block output", func(t *testing.T) {
		r := &hookRunner{blockText: true}
		got, err := Generate(r, "echo hi\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "echo hi\n---\nblock start\nhi\nblock end\n", got)
	})

	t.Run("command hooks bracket command output", func(t *testing.T) {
		r := &hookRunner{cmdText: true}
		got, err := Generate(r, "echo hi\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "echo hi\n---\nbefore echo\nhi\nafter echo\n", got)
	})

	t.Run("hook text survives silencing", func(t *testing.T) {
		r := &hookRunner{cmdText: true}
		got, err := Generate(r, "(echo hi)\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "(echo hi)\n---\nbefore echo\nafter echo\n", got)
	})

	t.Run("prefix covers hook text", func(t *testing.T) {
		r := &hookRunner{cmdText: true}
		got, err := Generate(r, "p: echo hi\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "p: echo hi\n---\np: before echo\np: hi\np: after echo\n", got)
	})
}

func TestGenerate_HookErrors(t *testing.T) {
	tests := []struct {
		hook string
		want string
	}{
		{"start_script", "start_script failed: hook boom"},
		{"end_script", "end_script failed: hook boom"},
		{"start_block", "start_block failed at line 1: hook boom"},
		{"end_block", "end_block failed at line 1: hook boom"},
		{"start_command", "start_command failed at line 1: hook boom"},
		{"end_command", "end_command failed at line 1: hook boom"},
	}

	for _, tt := range tests {
		t.Run(tt.hook, func(t *testing.T) {
			r := &hookRunner{failHook: tt.hook}
			_, err := Generate(r, "echo hi\n---\n")
			require.Error(t, err)
			var hookErr *HookError
			require.ErrorAs(t, err, &hookErr)
			assert.Equal(t, tt.hook, hookErr.Hook)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestGenerate_RoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"# A script exercising most syntax.",
		"echo first",
		"(echo silenced)",
		"c1: echo prefixed",
		"! error boom",
		"---",
		"",
		"echo a \"\" b",
		"---",
		"",
		"none",
		"---",
		"",
		"# trailing comment",
		"",
	}, "\n")

	first, err := Generate(&debugRunner{}, input)
	require.NoError(t, err)

	second, err := Generate(&debugRunner{}, first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
