// ABOUTME: Serves raw example files (SVG, JSON) from the example root.
// ABOUTME: Opens files through os.Root so request paths cannot leave the root directory.
package web

import (
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/2389-research/hypergallery/gallery"
)

const defaultContentType = "application/octet-stream"

// handleExampleFile serves the file named by the request path below
// gallery.URLPrefix, verbatim, with a content type guessed from its extension.
func (s *Server) handleExampleFile(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, gallery.URLPrefix)
	if rel == "" || !filepath.IsLocal(filepath.FromSlash(rel)) {
		http.NotFound(w, r)
		return
	}

	f, info, err := s.openExampleFile(rel)
	if err != nil {
		if isNotServable(err) {
			http.NotFound(w, r)
			return
		}
		s.internalError(w, "opening "+rel, err)
		return
	}
	defer f.Close()

	if info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(rel))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (s *Server) openExampleFile(rel string) (*os.File, fs.FileInfo, error) {
	root, err := os.OpenRoot(s.scanner.Root)
	if err != nil {
		return nil, nil, err
	}
	defer root.Close()

	f, err := root.Open(filepath.FromSlash(rel))
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

// contentTypeFor guesses a MIME type from the file extension.
func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return defaultContentType
}

// isNotServable reports whether an open error means the file is absent or
// outside the root, both of which are answered with 404.
func isNotServable(err error) bool {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return true
	}
	// os.Root does not export its escape error.
	return strings.Contains(err.Error(), "path escapes from parent")
}
