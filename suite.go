// File: suite.go
// Title: Goldenscript Suite Runner
// Description: Runs all goldenscripts found under a directory, each against
//              a fresh runner instance, with an optional YAML configuration
//              for skipping scripts.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial suite runner implementation

package goldenscript

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/mDW/foundation/core/error"
	mdwlog "github.com/msto63/mDW/foundation/core/log"
	"gopkg.in/yaml.v3"
)

// SuiteConfigFile is the optional per-directory suite configuration file.
const SuiteConfigFile = "goldenscript.yaml"

// SuiteConfig configures a script suite. It is read from SuiteConfigFile in
// the suite directory, if present.
type SuiteConfig struct {
	// Skip lists glob patterns of script paths (relative to the suite
	// directory) to skip.
	Skip []string `yaml:"skip"`
}

// RunSuite runs every goldenscript under dir, recursively, each against a
// fresh runner from newRunner. Scripts are independent: state never carries
// over between them. All failures are collected and returned together, tagged
// with their script path.
func (e *Engine) RunSuite(newRunner func() Runner, dir string) error {
	config, err := loadSuiteConfig(dir)
	if err != nil {
		return err
	}

	var failures []error
	ran := 0

	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || entry.Name() == SuiteConfigFile {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		skip, err := config.skips(rel)
		if err != nil {
			return err
		}
		if skip {
			e.logger.Debug("Skipping goldenscript", mdwlog.Fields{"script": rel})
			return nil
		}

		ran++
		if err := e.Run(newRunner(), path); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", rel, err))
		}
		return nil
	})
	if err != nil {
		return mdwerror.Wrap(err, "walking suite directory").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("dir", dir)
	}

	e.logger.Debug("Goldenscript suite finished", mdwlog.Fields{
		"dir":      dir,
		"scripts":  ran,
		"failures": len(failures),
	})
	return errors.Join(failures...)
}

// RunSuite runs every goldenscript under dir using a default engine.
func RunSuite(newRunner func() Runner, dir string) error {
	e, err := NewEngine(Options{})
	if err != nil {
		return err
	}
	return e.RunSuite(newRunner, dir)
}

// skips reports whether a script path matches any skip pattern.
func (c *SuiteConfig) skips(rel string) (bool, error) {
	for _, pattern := range c.Skip {
		match, err := filepath.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return false, mdwerror.Wrap(err, "invalid skip pattern").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("pattern", pattern)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// loadSuiteConfig reads the suite configuration, defaulting to an empty
// configuration if the file does not exist.
func loadSuiteConfig(dir string) (*SuiteConfig, error) {
	config := &SuiteConfig{}

	data, err := os.ReadFile(filepath.Join(dir, SuiteConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "reading suite configuration").
			WithCode(mdwerror.CodeInternal).
			WithDetail("dir", dir)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, mdwerror.Wrap(err, "parsing suite configuration").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("dir", dir)
	}
	return config, nil
}
