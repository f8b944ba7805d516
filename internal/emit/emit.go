package emit

import "fmt"

// Writer is the sink a rendered document is emitted into. Implementations
// target one output format; the resolution engine only ever talks to this
// interface.
type Writer interface {
	Write(text string) error
	Header(text string, level int) error
	Description(text string) error
	Table(headers []string, rows [][]string) error
}

// ShapeError reports a table row whose cell count does not match the header
// count. The offending row is not written.
type ShapeError struct {
	Columns int
	Cells   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("table row has %d cells, want %d", e.Cells, e.Columns)
}

// HeaderReference returns the short reference text pointing at the section
// with the given heading.
func HeaderReference(header string) string {
	return fmt.Sprintf("[%s](#%s)", header, header)
}

func checkRows(headers []string, rows [][]string) error {
	for _, row := range rows {
		if len(row) != len(headers) {
			return &ShapeError{Columns: len(headers), Cells: len(row)}
		}
	}
	return nil
}
