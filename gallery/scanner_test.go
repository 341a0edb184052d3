// ABOUTME: Tests for the example directory scanner.
// ABOUTME: Covers missing roots, suffix filtering, nested directories, symlinks, and Lookup.
package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanMissingRootIsEmpty(t *testing.T) {
	s := NewScanner(filepath.Join(t.TempDir(), "does-not-exist"))

	examples, err := s.Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if examples == nil {
		t.Fatal("expected non-nil empty collection")
	}
	if len(examples) != 0 {
		t.Errorf("expected 0 examples, got %d", len(examples))
	}
}

func TestScanListsOnlySVGAndJSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "and", "a.svg"), "<svg/>")
	writeFile(t, filepath.Join(root, "and", "a.json"), "{}")
	writeFile(t, filepath.Join(root, "and", "b.svg"), "<svg/>")
	writeFile(t, filepath.Join(root, "and", "notes.txt"), "ignored")
	writeFile(t, filepath.Join(root, "and", "nested", "c.svg"), "<svg/>")
	if err := os.MkdirAll(filepath.Join(root, "and", "dir.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "README.md"), "# not an example")

	examples, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d: %+v", len(examples), examples)
	}

	want := Example{
		Name: "and",
		Files: map[string]string{
			"a.svg":  "/example_isomorphisms/and/a.svg",
			"a.json": "/example_isomorphisms/and/a.json",
			"b.svg":  "/example_isomorphisms/and/b.svg",
		},
	}
	if !reflect.DeepEqual(examples[0], want) {
		t.Errorf("got %+v, want %+v", examples[0], want)
	}
}

func TestScanIncludesEmptyExampleDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "copy_and", "b.json"), "[]")

	examples, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := map[string]int{}
	for _, ex := range examples {
		names[ex.Name] = len(ex.Files)
	}
	want := map[string]int{"empty": 0, "copy_and": 1}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestScanFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "linked", "a.svg"), "<svg/>")
	writeFile(t, filepath.Join(outside, "target.json"), "{}")
	if err := os.Symlink(filepath.Join(outside, "linked"), filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "target.json"), filepath.Join(outside, "linked", "a.json")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	examples, err := NewScanner(root).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 1 || examples[0].Name != "linked" {
		t.Fatalf("expected linked example, got %+v", examples)
	}
	if !examples[0].HasFile("a.svg") || !examples[0].HasFile("a.json") {
		t.Errorf("expected a.svg and a.json, got %v", examples[0].Files)
	}
}

func TestScanRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	writeFile(t, root, "not a directory")

	if _, err := NewScanner(root).Scan(); err == nil {
		t.Fatal("expected error when root is a regular file")
	}
}

func TestLookup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "and", "a.svg"), "<svg/>")
	s := NewScanner(root)

	ex, err := s.Lookup("and")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ex.HasFile("a.svg") {
		t.Errorf("expected a.svg in %v", ex.Files)
	}

	if _, err := s.Lookup("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileURLEscapesSegments(t *testing.T) {
	tests := []struct {
		example, file, want string
	}{
		{"and", "a.svg", "/example_isomorphisms/and/a.svg"},
		{"copy and", "b.json", "/example_isomorphisms/copy%20and/b.json"},
		{"q#1", "a.svg", "/example_isomorphisms/q%231/a.svg"},
	}
	for _, tt := range tests {
		if got := FileURL(tt.example, tt.file); got != tt.want {
			t.Errorf("FileURL(%q, %q) = %q, want %q", tt.example, tt.file, got, tt.want)
		}
	}
}

func TestNewScannerDefaultRoot(t *testing.T) {
	if got := NewScanner("").Root; got != DefaultRoot {
		t.Errorf("expected default root %q, got %q", DefaultRoot, got)
	}
}
