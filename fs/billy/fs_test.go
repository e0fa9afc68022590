package billy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parentfs "github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs/fstest"
)

func TestInMemoryFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (parentfs.Filesystem, string) {
		return NewInMemoryFS(), "/work"
	})
}

func TestBaseOSFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (parentfs.Filesystem, string) {
		return NewBaseOSFS(), t.TempDir()
	})
}

func TestOSFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (parentfs.Filesystem, string) {
		return NewOSFS(t.TempDir()), "/"
	})
}

func TestBaseOSFS_OpenFileOnDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Calc.jj")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, err := NewBaseOSFS().OpenFile(dir, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "billy: openfile")
}

func TestBaseOSFS_RelativePaths(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	fsys := NewBaseOSFS()
	require.NoError(t, fsys.WriteFile("rel.jjt", []byte("x"), 0o644))

	data, err := os.ReadFile(filepath.Join(root, "rel.jjt"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
