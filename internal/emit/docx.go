package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
)

// Docx writes a document as an OOXML word-processing file. The document is
// assembled in memory; call WriteTo once rendering has finished.
type Docx struct {
	doc *docx.Docx
}

func NewDocx() *Docx {
	return &Docx{doc: docx.New().WithDefaultTheme()}
}

func (d *Docx) Write(text string) error {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		d.doc.AddParagraph().AddText(line)
	}
	return nil
}

// Header adds a heading paragraph. Level 0 maps to Heading1.
func (d *Docx) Header(text string, level int) error {
	style := level + 1
	if style > 6 {
		style = 6
	}
	p := d.doc.AddParagraph()
	p.Style(fmt.Sprintf("Heading%d", style))
	p.AddText(text)
	return nil
}

func (d *Docx) Description(text string) error {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) > 0 {
		d.doc.AddParagraph().AddText(strings.Join(lines, " "))
	}
	return nil
}

// Table adds a bordered table with one header row. Rows must match the
// header width or the call fails with a ShapeError and adds nothing.
func (d *Docx) Table(headers []string, rows [][]string) error {
	if err := checkRows(headers, rows); err != nil {
		return err
	}
	tbl := d.doc.AddTable(len(rows)+1, len(headers), 0, nil)
	for col, h := range headers {
		tbl.TableRows[0].TableCells[col].AddParagraph().AddText(h).Bold()
	}
	for i, row := range rows {
		for col, cell := range row {
			tbl.TableRows[i+1].TableCells[col].AddParagraph().AddText(cell)
		}
	}
	return nil
}

// WriteTo serializes the assembled document.
func (d *Docx) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}
