package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.uber.org/zap"
)

func writeTree(t *testing.T, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("fn main() {}\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestFindSourceFiles(t *testing.T) {
	root := writeTree(t, []string{
		"daemon/src/core/blockchain.rs",
		"common/src/lib.rs",
		"README.md",
		"target/debug/build.rs",
		".git/hooks/sample.rs",
		"wallet/generated/types.rs",
	})

	s := New(".rs", []string{"target"}, []string{"generated/"}, zap.NewNop().Sugar())
	files, err := s.FindSourceFiles(root)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"common/src/lib.rs",
		"daemon/src/core/blockchain.rs",
	}
	slices.Sort(files)
	if !slices.Equal(files, want) {
		t.Errorf("files: got %v, want %v", files, want)
	}
}

func TestFindSourceFilesMissingRoot(t *testing.T) {
	s := New(".rs", nil, nil, zap.NewNop().Sugar())

	// WalkDir surfaces the root error through the callback, which skips
	// it; the result is simply empty.
	files, err := s.FindSourceFiles(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestFindSourceFilesRelativePathsUseSlashes(t *testing.T) {
	root := writeTree(t, []string{"daemon/src/rpc.rs"})

	s := New(".rs", nil, nil, zap.NewNop().Sugar())
	files, err := s.FindSourceFiles(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != "daemon/src/rpc.rs" {
		t.Errorf("files: got %v, want [daemon/src/rpc.rs]", files)
	}
}
