// Package fs defines the filesystem contracts used by treeio and a few
// helpers for working with the native filesystem.
package fs

import (
	"io/fs"
	"os"
)

// File represents an open file handle supporting basic I/O operations.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}

// Filesystem is the set of operations the file session needs from storage.
// Errors must wrap the io/fs sentinels (fs.ErrNotExist, fs.ErrPermission)
// so they can be classified with errors.Is.
type Filesystem interface {
	Exists(path string) (bool, error)
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	ReadFile(path string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
}
