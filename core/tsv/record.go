// Package tsv defines the verse record emitted by extraction and writes
// it in the tab-separated form consumed by the downstream database import.
package tsv

import (
	"fmt"
	"strings"
)

// VerseRecord is one row of output: a single verse with its location.
type VerseRecord struct {
	// Book is the source-provided book code (e.g. "GEN").
	Book string
	// Chapter is the chapter number within the book, >= 1.
	Chapter int
	// Verse is the verse number within the chapter, either a decimal
	// ("3") or a bridge preserved verbatim from the source ("6-7").
	Verse string
	// Text is the verse text with inline markup stripped and
	// whitespace normalized. Never contains a tab or newline byte.
	Text string
}

// Line renders the record as a single TSV line without the trailing
// newline. Fields are sanitized so the record cannot corrupt the
// delimited format.
func (r *VerseRecord) Line() string {
	return fmt.Sprintf("%s\t%d\t%s\t%s",
		SanitizeField(r.Book), r.Chapter, SanitizeField(r.Verse), SanitizeField(r.Text))
}

// String implements fmt.Stringer for logging and debugging.
func (r *VerseRecord) String() string {
	return fmt.Sprintf("%s %d:%s", r.Book, r.Chapter, r.Verse)
}

var fieldSanitizer = strings.NewReplacer(
	"\t", " ",
	"\n", " ",
	"\r", " ",
)

// SanitizeField replaces any tab, newline, or carriage return in a
// field with a single space. Extraction already normalizes whitespace,
// so this is the last line of defense for the format invariant.
func SanitizeField(s string) string {
	return fieldSanitizer.Replace(s)
}
