// Package fstest provides a conformance test suite for fs.Filesystem
// providers. It checks the behaviour the file session relies on: stat
// results for files and directories, classification of missing paths,
// read-back of written data and truncating opens.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (fs.Filesystem, string) {
//	        return myprovider.New(), "/"
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
)

// NewFunc returns a fresh filesystem and the root directory tests may write under.
type NewFunc func(t *testing.T) (fs.Filesystem, string)

// TestSuite runs all conformance tests against a filesystem.
// Each group receives a fresh filesystem from newFS.
func TestSuite(t *testing.T, newFS NewFunc) {
	TestSuiteWithSkip(t, newFS, nil)
}

// TestSuiteWithSkip runs conformance tests with optional test skipping.
// The skipTests parameter lists group names to skip (e.g., "WriteFS").
func TestSuiteWithSkip(t *testing.T, newFS NewFunc, skipTests []string) {
	shouldSkip := func(testName string) bool {
		for _, skip := range skipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("ReadFS", func(t *testing.T) {
		if shouldSkip("ReadFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		filesystem, root := newFS(t)
		TestReadFS(t, filesystem, root)
	})

	t.Run("WriteFS", func(t *testing.T) {
		if shouldSkip("WriteFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		filesystem, root := newFS(t)
		TestWriteFS(t, filesystem, root)
	})
}
