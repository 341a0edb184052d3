// ABOUTME: View model for the index page: one row per example, one cell per hypergraph column.
// ABOUTME: Also renders the optional README.md intro above the table with goldmark.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/2389-research/hypergallery/gallery"
)

// introFile is rendered above the table when present in the example root.
const introFile = "README.md"

// columnSuffixes are the file basenames wired into the table, in column order.
var columnSuffixes = []string{"a", "b"}

// IndexData holds all data passed to the index template.
type IndexData struct {
	Title string
	Intro template.HTML
	Rows  []IndexRow
}

// IndexRow is one example in the table.
type IndexRow struct {
	Name    string
	Columns []IndexCell
}

// IndexCell is one hypergraph column of a row. Empty URLs mean the
// corresponding file is absent and nothing is emitted for it.
type IndexCell struct {
	Suffix  string
	SVGURL  string
	JSONURL string
	JSONID  string
}

// BuildRows maps the example collection onto table rows, preserving order.
func BuildRows(examples []gallery.Example) []IndexRow {
	rows := make([]IndexRow, 0, len(examples))
	for _, ex := range examples {
		row := IndexRow{Name: ex.Name}
		for _, suffix := range columnSuffixes {
			cell := IndexCell{Suffix: suffix}
			if u, ok := ex.Files[suffix+".svg"]; ok {
				cell.SVGURL = u
			}
			if u, ok := ex.Files[suffix+".json"]; ok {
				cell.JSONURL = u
				cell.JSONID = JSONToggleID(ex.Name, suffix)
			}
			row.Columns = append(row.Columns, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

// JSONToggleID is the element id tying a "See JSON" button to its panel.
func JSONToggleID(name, suffix string) string {
	return name + "--" + suffix + "--json"
}

// loadIntro renders README.md from the example root. A missing file yields
// an empty intro.
func (s *Server) loadIntro() (template.HTML, error) {
	src, err := os.ReadFile(filepath.Join(s.scanner.Root, introFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", introFile, err)
	}

	// goldmark omits raw HTML unless WithUnsafe is set.
	var buf bytes.Buffer
	if err := s.markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting %s: %w", introFile, err)
	}
	return template.HTML(buf.String()), nil
}
