package tsv

import (
	"bufio"
	"io"
)

// Writer writes verse records as TSV lines to an underlying stream.
// One line per record, single tab separators, no header row.
type Writer struct {
	w       *bufio.Writer
	written int
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record as a TSV line.
func (t *Writer) Write(r *VerseRecord) error {
	if _, err := t.w.WriteString(r.Line()); err != nil {
		return err
	}
	if err := t.w.WriteByte('\n'); err != nil {
		return err
	}
	t.written++
	return nil
}

// Count returns the number of records written so far.
func (t *Writer) Count() int {
	return t.written
}

// Flush flushes buffered output to the underlying stream.
func (t *Writer) Flush() error {
	return t.w.Flush()
}
