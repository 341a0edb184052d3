// ABOUTME: Directory scanner that turns the example root into an ordered collection of Examples.
// ABOUTME: Each immediate subdirectory is one example; only .svg and .json files are listed.
package gallery

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// URLPrefix is the request path prefix under which example files are served.
const URLPrefix = "/example_isomorphisms/"

// DefaultRoot is the example root used when none is configured, relative to
// the working directory.
const DefaultRoot = "example_isomorphisms"

// ErrNotFound is returned by Lookup when no example has the requested name.
var ErrNotFound = errors.New("example not found")

// Example is one subdirectory of the example root.
type Example struct {
	Name  string            `json:"name"`
	Files map[string]string `json:"files"` // filename -> URL
}

// HasFile reports whether the example lists the given filename.
func (e Example) HasFile(name string) bool {
	_, ok := e.Files[name]
	return ok
}

// Scanner reads examples from a root directory. It holds no state between
// calls; every Scan is a fresh traversal.
type Scanner struct {
	Root string
}

// NewScanner returns a Scanner for root, falling back to DefaultRoot.
func NewScanner(root string) *Scanner {
	if root == "" {
		root = DefaultRoot
	}
	return &Scanner{Root: root}
}

// Scan lists every example directly under the root in directory-listing
// order. A missing root is an empty collection, not an error.
func (s *Scanner) Scan() ([]Example, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Example{}, nil
		}
		return nil, fmt.Errorf("reading example root %s: %w", s.Root, err)
	}

	examples := make([]Example, 0, len(entries))
	for _, entry := range entries {
		dir := filepath.Join(s.Root, entry.Name())
		// Stat follows symlinks, so a linked example directory still counts.
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		ex, err := s.readExample(entry.Name())
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// Lookup returns the example with the given name, or ErrNotFound.
func (s *Scanner) Lookup(name string) (Example, error) {
	examples, err := s.Scan()
	if err != nil {
		return Example{}, err
	}
	for _, ex := range examples {
		if ex.Name == name {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (s *Scanner) readExample(name string) (Example, error) {
	dir := filepath.Join(s.Root, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Example{}, fmt.Errorf("reading example %s: %w", name, err)
	}

	ex := Example{Name: name, Files: make(map[string]string)}
	for _, entry := range entries {
		fileName := entry.Name()
		if !IsListedFile(fileName) {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, fileName))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		ex.Files[fileName] = FileURL(name, fileName)
	}
	return ex, nil
}

// IsListedFile reports whether a filename carries one of the suffixes the
// gallery lists.
func IsListedFile(name string) bool {
	return strings.HasSuffix(name, ".svg") || strings.HasSuffix(name, ".json")
}

// FileURL returns the request path that serves file inside example.
func FileURL(example, file string) string {
	return URLPrefix + url.PathEscape(example) + "/" + url.PathEscape(file)
}
