package emit

type opKind int

const (
	opWrite opKind = iota
	opHeader
	opDescription
	opTable
)

type op struct {
	kind    opKind
	text    string
	level   int
	headers []string
	rows    [][]string
}

// Recorder buffers writer calls without touching any real sink. The
// resolution engine renders each section into a Recorder first, so a section
// abandoned halfway through can be discarded while already committed sections
// stay untouched. Replay commits the buffered section onto a real Writer.
type Recorder struct {
	ops []op
}

func (r *Recorder) Write(text string) error {
	r.ops = append(r.ops, op{kind: opWrite, text: text})
	return nil
}

func (r *Recorder) Header(text string, level int) error {
	r.ops = append(r.ops, op{kind: opHeader, text: text, level: level})
	return nil
}

func (r *Recorder) Description(text string) error {
	r.ops = append(r.ops, op{kind: opDescription, text: text})
	return nil
}

// Table validates row shape eagerly so a malformed table fails while the
// section is still discardable.
func (r *Recorder) Table(headers []string, rows [][]string) error {
	if err := checkRows(headers, rows); err != nil {
		return err
	}
	r.ops = append(r.ops, op{kind: opTable, headers: headers, rows: rows})
	return nil
}

// Replay commits every buffered call onto w, in order.
func (r *Recorder) Replay(w Writer) error {
	for _, o := range r.ops {
		var err error
		switch o.kind {
		case opWrite:
			err = w.Write(o.text)
		case opHeader:
			err = w.Header(o.text, o.level)
		case opDescription:
			err = w.Description(o.text)
		case opTable:
			err = w.Table(o.headers, o.rows)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Empty reports whether nothing was recorded.
func (r *Recorder) Empty() bool {
	return len(r.ops) == 0
}
