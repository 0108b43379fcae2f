package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/src/tos", filepath.Join(home, "src/tos")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~tilde-no-slash", "~tilde-no-slash"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsureDirCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "nested")

	if err := EnsureDir(path); err != nil {
		t.Fatal(err)
	}
	if !DirExists(path) {
		t.Errorf("directory %s was not created", path)
	}

	// Creating an existing directory is not an error.
	if err := EnsureDir(path); err != nil {
		t.Errorf("EnsureDir on existing dir: %v", err)
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if DirExists(file) {
		t.Error("DirExists on a regular file should be false")
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists on a missing path should be false")
	}
}
