// File: doc.go
// Title: Goldenscript Package Documentation
// Description: Documents the top-level goldenscript API: golden master
//              testing with scripted commands, file-based runs with update
//              mode, and directory suites.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial goldenscript facade

/*
Package goldenscript implements a golden master testing framework driven by
plain-text scripts.

A goldenscript interleaves commands with their expected output:

	set foo=1
	get foo
	---
	foo = 1

	! get missing
	---
	Error: key 'missing' not found

Commands are executed against a user-supplied runner.Runner, and the complete
output is regenerated on every run. Run compares the regenerated script
against the file on disk and fails with a diff on any difference; setting
UPDATE_GOLDENFILES=1 rewrites the file instead, so the diff can be reviewed
and committed like any other code change.

Typical test usage:

	func TestScripts(t *testing.T) {
		err := goldenscript.RunSuite(func() runner.Runner {
			return &storeRunner{data: map[string]string{}}
		}, "testdata/scripts")
		if err != nil {
			t.Fatal(err)
		}
	}

Generate is the underlying pure function for callers that manage script text
themselves. The ast and runner packages hold the script data model and the
executor contract; this package re-exports their core types for convenience.
*/
package goldenscript
