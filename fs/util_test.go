package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetAbs(t *testing.T) {
	t.Run("absolute path passthrough", func(t *testing.T) {
		abs := "/tmp/grammar.jjt"
		got, err := GetAbs(abs)
		if err != nil {
			t.Fatalf("GetAbs(%q) returned error: %v", abs, err)
		}
		if got != abs {
			t.Errorf("GetAbs(%q) = %q, want %q", abs, got, abs)
		}
	})

	t.Run("relative path is resolved against the working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd failed: %v", err)
		}
		got, err := GetAbs("grammar.jjt")
		if err != nil {
			t.Fatalf("GetAbs returned error: %v", err)
		}
		if want := filepath.Join(wd, "grammar.jjt"); got != want {
			t.Errorf("GetAbs(grammar.jjt) = %q, want %q", got, want)
		}
	})

	t.Run("path is cleaned", func(t *testing.T) {
		got, err := GetAbs("/tmp/./out/../grammar.jjt")
		if err != nil {
			t.Fatalf("GetAbs returned error: %v", err)
		}
		if got != "/tmp/grammar.jjt" {
			t.Errorf("GetAbs = %q, want %q", got, "/tmp/grammar.jjt")
		}
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing file returns true", func(t *testing.T) {
		p := filepath.Join(dir, "jjtree.yaml")
		if err := os.WriteFile(p, []byte("output_directory: out\n"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		ok, err := Exists(p)
		if err != nil {
			t.Fatalf("Exists(%q) returned error: %v", p, err)
		}
		if !ok {
			t.Errorf("Exists(%q) = false, want true", p)
		}
	})

	t.Run("directory returns true", func(t *testing.T) {
		ok, err := Exists(dir)
		if err != nil {
			t.Fatalf("Exists(%q) returned error: %v", dir, err)
		}
		if !ok {
			t.Errorf("Exists(%q) = false, want true", dir)
		}
	})

	t.Run("missing file returns false without error", func(t *testing.T) {
		p := filepath.Join(dir, "missing.yaml")
		ok, err := Exists(p)
		if err != nil {
			t.Fatalf("Exists(%q) returned error: %v", p, err)
		}
		if ok {
			t.Errorf("Exists(%q) = true, want false", p)
		}
	})
}
