package session

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs/billy"
)

// trackingFS records every file it hands out so tests can check closes.
type trackingFS struct {
	fs.Filesystem
	files    []*trackedFile
	closeErr error
	openErr  error
}

type trackedFile struct {
	fs.File
	closed   bool
	closeErr error
}

func (f *trackedFile) Close() error {
	f.closed = true
	if err := f.File.Close(); err != nil {
		return err
	}
	return f.closeErr
}

func (t *trackingFS) track(f fs.File) *trackedFile {
	tf := &trackedFile{File: f, closeErr: t.closeErr}
	t.files = append(t.files, tf)
	return tf
}

//nolint:ireturn // mirrors fs.Filesystem.
func (t *trackingFS) Open(name string) (fs.File, error) {
	if t.openErr != nil {
		return nil, t.openErr
	}
	f, err := t.Filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	return t.track(f), nil
}

//nolint:ireturn // mirrors fs.Filesystem.
func (t *trackingFS) OpenFile(name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := t.Filesystem.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return t.track(f), nil
}

// fileNamed returns the most recent tracked handle for name.
func (t *trackingFS) fileNamed(name string) *trackedFile {
	for i := len(t.files) - 1; i >= 0; i-- {
		if t.files[i].Name() == name {
			return t.files[i]
		}
	}
	return nil
}

// stubDetector returns a fixed answer.
type stubDetector struct {
	generated bool
	err       error
}

func (d stubDetector) IsGeneratedBy(string, string) (bool, error) {
	return d.generated, d.err
}

var errBoom = stderrors.New("boom")

// newMemFS returns an in-memory filesystem seeded with files.
func newMemFS(t *testing.T, files map[string]string) *billy.FS {
	t.Helper()
	fsys := billy.NewInMemoryFS()
	for name, content := range files {
		require.NoError(t, fsys.WriteFile(name, []byte(content), 0o644))
	}
	return fsys
}
