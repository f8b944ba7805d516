package emit

import (
	"io"
	"strings"
)

// Markdown writes a document as markdown text.
type Markdown struct {
	w io.Writer
}

func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{w: w}
}

func (m *Markdown) Write(text string) error {
	_, err := io.WriteString(m.w, text)
	return err
}

// Header prints a heading. Level 0 is the top level ("#").
func (m *Markdown) Header(text string, level int) error {
	return m.Write(strings.Repeat("#", 1+level) + " " + text + "\n\n")
}

// Description prints a free-text block, stripping per-line indentation so
// schema docs written as indented literals come out flush left.
func (m *Markdown) Description(text string) error {
	for _, line := range strings.Split(text, "\n") {
		if err := m.Write(strings.TrimSpace(line) + "\n"); err != nil {
			return err
		}
	}
	return m.Write("\n")
}

// Table prints a markdown table. Every row must have exactly one cell per
// header; a malformed row fails with a ShapeError before any of its cells
// are written.
func (m *Markdown) Table(headers []string, rows [][]string) error {
	if err := m.row(headers); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "--"
	}
	if err := m.row(sep); err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) != len(headers) {
			return &ShapeError{Columns: len(headers), Cells: len(row)}
		}
		if err := m.row(row); err != nil {
			return err
		}
	}
	return m.Write("\n\n")
}

func (m *Markdown) row(cells []string) error {
	return m.Write("| " + strings.Join(cells, " | ") + " |\n")
}
