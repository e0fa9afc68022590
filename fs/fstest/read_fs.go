package fstest

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"path/filepath"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
)

// TestReadFS tests read operations: Open, Stat, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem fs.Filesystem, root string) {
	testContent := []byte("options { MULTI = true; }\n")
	dir := filepath.Join(root, "grammars")
	file := filepath.Join(dir, "Calc.jjt")

	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	if err := filesystem.WriteFile(file, testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}

	t.Run("Open", func(t *testing.T) {
		testReadFSOpen(t, filesystem, file, testContent)
	})
	t.Run("StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem, file, testContent)
	})
	t.Run("StatDir", func(t *testing.T) {
		testReadFSStatDir(t, filesystem, dir)
	})
	t.Run("ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem, file, testContent)
	})
	t.Run("NotExist", func(t *testing.T) {
		testReadFSNotExist(t, filesystem, filepath.Join(root, "nonexistent.jjt"))
	})
	t.Run("Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem, file, dir, filepath.Join(root, "nonexistent.jjt"))
	})
}

func testReadFSOpen(t *testing.T, filesystem fs.Filesystem, file string, testContent []byte) {
	f, err := filesystem.Open(file)
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", file, err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Errorf("ReadAll(): got error %v, want nil", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("Read(): got %q, want %q", data, testContent)
	}
}

func testReadFSStatFile(t *testing.T, filesystem fs.Filesystem, file string, testContent []byte) {
	info, err := filesystem.Stat(file)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", file, err)
		return
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", file)
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", file, info.Size(), len(testContent))
	}
}

func testReadFSStatDir(t *testing.T, filesystem fs.Filesystem, dir string) {
	info, err := filesystem.Stat(dir)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", dir, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", dir)
	}
}

func testReadFSReadFile(t *testing.T, filesystem fs.Filesystem, file string, testContent []byte) {
	data, err := filesystem.ReadFile(file)
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", file, err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", file, data, testContent)
	}
}

// testReadFSNotExist checks missing paths are reported as fs.ErrNotExist.
func testReadFSNotExist(t *testing.T, filesystem fs.Filesystem, missing string) {
	if _, err := filesystem.Open(missing); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", missing, err)
	}
	if _, err := filesystem.Stat(missing); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", missing, err)
	}
}

func testReadFSExists(t *testing.T, filesystem fs.Filesystem, file, dir, missing string) {
	for path, want := range map[string]bool{file: true, dir: true, missing: false} {
		exists, err := filesystem.Exists(path)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", path, err)
			continue
		}
		if exists != want {
			t.Errorf("Exists(%q): got %v, want %v", path, exists, want)
		}
	}
}
