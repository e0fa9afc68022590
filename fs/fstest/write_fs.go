package fstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/treeio/fs"
)

// TestWriteFS tests write operations: OpenFile, WriteFile and MkdirAll.
func TestWriteFS(t *testing.T, filesystem fs.Filesystem, root string) {
	t.Run("MkdirAll", func(t *testing.T) {
		testWriteFSMkdirAll(t, filesystem, root)
	})
	t.Run("OpenFileCreate", func(t *testing.T) {
		testWriteFSOpenFileCreate(t, filesystem, root)
	})
	t.Run("OpenFileTruncate", func(t *testing.T) {
		testWriteFSOpenFileTruncate(t, filesystem, root)
	})
}

// testWriteFSMkdirAll creates nested directories and checks the call is idempotent.
func testWriteFSMkdirAll(t *testing.T, filesystem fs.Filesystem, root string) {
	dir := filepath.Join(root, "out", "a", "b")
	for i := 0; i < 2; i++ {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q) call %d: got error %v, want nil", dir, i+1, err)
		}
	}

	info, err := filesystem.Stat(filepath.Join(root, "out", "a"))
	if err != nil {
		t.Fatalf("Stat(): got error %v, want nil", err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(): IsDir() = false, want true")
	}
}

func testWriteFSOpenFileCreate(t *testing.T, filesystem fs.Filesystem, root string) {
	if err := filesystem.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", root, err)
	}
	p := filepath.Join(root, "Calc.jj")

	f, err := filesystem.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", p, err)
	}
	if _, err := f.Write([]byte("PARSER_BEGIN(Calc)")); err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", p, err)
	}
	if string(data) != "PARSER_BEGIN(Calc)" {
		t.Errorf("ReadFile(%q): got %q, want %q", p, data, "PARSER_BEGIN(Calc)")
	}
}

// testWriteFSOpenFileTruncate checks O_TRUNC drops previous content.
func testWriteFSOpenFileTruncate(t *testing.T, filesystem fs.Filesystem, root string) {
	p := filepath.Join(root, "Trunc.jj")
	if err := filesystem.WriteFile(p, []byte("a much longer previous generation"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", p, err)
	}

	f, err := filesystem.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", p, err)
	}
	if _, err := f.Write([]byte("new")); err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", p, err)
	}
	if string(data) != "new" {
		t.Errorf("ReadFile(%q): got %q, want %q", p, data, "new")
	}
}
