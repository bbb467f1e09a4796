// File: goldenscript.go
// Title: Goldenscript Main Interface and Engine
// Description: Provides the high-level goldenscript API: the Engine
//              coordinating parser and generator, pure text generation, and
//              file-based golden master runs with an update mode.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial goldenscript engine implementation

package goldenscript

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/go-cmp/cmp"
	mdwerror "github.com/msto63/mDW/foundation/core/error"
	mdwlog "github.com/msto63/mDW/foundation/core/log"
	mdwstringx "github.com/msto63/mDW/foundation/utils/stringx"

	gsast "github.com/msto63/goldenscript/ast"
	"github.com/msto63/goldenscript/parser"
	"github.com/msto63/goldenscript/runner"
)

// Re-exported core types, so most users only import this package and the
// runner package.
type (
	Block    = gsast.Block
	Command  = gsast.Command
	Argument = gsast.Argument
	Runner   = runner.Runner
	Hooks    = runner.Hooks
)

// DefaultUpdateEnvVar is the environment variable gating update mode.
const DefaultUpdateEnvVar = "UPDATE_GOLDENFILES"

// Engine coordinates script parsing, generation, and golden file handling.
type Engine struct {
	generator *runner.Generator
	logger    *mdwlog.Logger
	options   Options
}

// Options configures the goldenscript engine behavior.
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxScriptSize limits script input length (default: 1 MiB)
	MaxScriptSize int

	// UpdateEnvVar names the environment variable gating update mode
	// (default: UPDATE_GOLDENFILES)
	UpdateEnvVar string
}

// NewEngine creates a new goldenscript engine with the given options.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.UpdateEnvVar == "" {
		opts.UpdateEnvVar = DefaultUpdateEnvVar
	}

	p, err := parser.New(parser.Options{
		Logger:        opts.Logger,
		MaxScriptSize: opts.MaxScriptSize,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "creating goldenscript parser").
			WithCode(mdwerror.CodeServiceInitialization)
	}
	g, err := runner.New(runner.Options{Logger: opts.Logger, Parser: p})
	if err != nil {
		return nil, mdwerror.Wrap(err, "creating goldenscript generator").
			WithCode(mdwerror.CodeServiceInitialization)
	}

	return &Engine{
		generator: g,
		logger:    opts.Logger.WithField("component", "goldenscript"),
		options:   opts,
	}, nil
}

// Generate executes the input script against the runner and returns the
// rendered script text with all output sections regenerated. It is a pure
// function of the input text and the runner's behavior.
func (e *Engine) Generate(r Runner, input string) (string, error) {
	return e.generator.Generate(r, input)
}

// Run executes the goldenscript at the given path and compares the generated
// output against the file contents, failing with a diff on any difference.
// In update mode (see Options.UpdateEnvVar) the file is rewritten with the
// generated output instead.
func (e *Engine) Run(r Runner, path string) error {
	if mdwstringx.IsBlank(path) {
		return mdwerror.New("script path must not be blank").
			WithCode(mdwerror.CodeInvalidInput)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return mdwerror.Wrap(err, "reading goldenscript").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path)
	}
	input := string(data)

	output, err := e.Generate(r, input)
	if err != nil {
		return err
	}

	if e.updateMode() {
		if output == input {
			return nil
		}
		e.logger.Info("Updating goldenscript", mdwlog.Fields{"path": path})
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return mdwerror.Wrap(err, "updating goldenscript").
				WithCode(mdwerror.CodeInternal).
				WithDetail("path", path)
		}
		return nil
	}

	if output != input {
		return mdwerror.New(fmt.Sprintf(
			"script output differs from %s (set %s=1 to update):\n%s",
			path, e.options.UpdateEnvVar, cmp.Diff(input, output))).
			WithCode(mdwerror.CodeInvalidOperation).
			WithDetail("path", path)
	}
	return nil
}

// updateMode reports whether the update environment variable is set to a
// truthy value.
func (e *Engine) updateMode() bool {
	v, err := strconv.ParseBool(os.Getenv(e.options.UpdateEnvVar))
	return err == nil && v
}

// Generate renders a goldenscript using a default engine.
func Generate(r Runner, input string) (string, error) {
	e, err := NewEngine(Options{})
	if err != nil {
		return "", err
	}
	return e.Generate(r, input)
}

// Run executes and verifies the goldenscript at path using a default engine.
func Run(r Runner, path string) error {
	e, err := NewEngine(Options{})
	if err != nil {
		return err
	}
	return e.Run(r, path)
}
