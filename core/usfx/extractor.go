// Package usfx converts USFX XML structural events into verse records.
//
// The extractor is a single-pass state machine over the event stream.
// Book and chapter context is carried forward from structural markers,
// verse text accumulates between verse markers, and a completed record
// is emitted every time a marker or the end of input closes the
// pending verse. A structurally inconsistent document aborts the whole
// conversion; partial output is worse than none for the downstream
// import.
package usfx

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	converrors "github.com/FocuswithJustin/usfx2tsv/core/errors"
	"github.com/FocuswithJustin/usfx2tsv/core/tsv"
)

// Options configures an Extractor.
type Options struct {
	// TagClasses overrides the default USFX content/annotation table.
	// Tags absent from the table are treated as content-bearing.
	TagClasses map[string]TagClass
}

// Extractor folds structural events into verse records. It owns its
// parse context exclusively for the duration of one document and must
// not be shared across documents or goroutines.
type Extractor struct {
	src  EventSource
	opts Options

	// Parse context. book == "" means no book is active, chapter == 0
	// means no chapter is active, pending == nil means no verse is
	// under construction.
	book    string
	chapter int
	pending *tsv.VerseRecord

	buf          strings.Builder
	pendingSpace bool
	skipDepth    int // > 0 while inside an annotation subtree

	err error // terminal state; io.EOF once exhausted
}

// New returns an Extractor reading from src with default options.
func New(src EventSource) *Extractor {
	return NewWithOptions(src, Options{})
}

// NewWithOptions returns an Extractor with the given options.
func NewWithOptions(src EventSource, opts Options) *Extractor {
	if opts.TagClasses == nil {
		opts.TagClasses = defaultTagClasses
	}
	return &Extractor{src: src, opts: opts}
}

// Next returns the next completed verse record in document order. It
// returns io.EOF when the document is exhausted. Any other error is
// terminal: subsequent calls return the same error and no further
// records are produced.
func (x *Extractor) Next() (*tsv.VerseRecord, error) {
	if x.err != nil {
		return nil, x.err
	}
	for {
		ev, err := x.src.Next()
		if err == io.EOF {
			rec := x.flush()
			x.err = io.EOF
			if rec != nil {
				return rec, nil
			}
			return nil, io.EOF
		}
		if err != nil {
			x.err = err
			return nil, err
		}
		rec, err := x.consume(ev)
		if err != nil {
			// A verse closed by the failing marker is still delivered;
			// the error surfaces on the following call.
			x.err = err
			if rec != nil {
				return rec, nil
			}
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}
}

// ExtractAll drains the extractor and returns all records.
func (x *Extractor) ExtractAll() ([]*tsv.VerseRecord, error) {
	var records []*tsv.VerseRecord
	for {
		rec, err := x.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// consume folds one event into the context, returning a record if the
// event closed the pending verse.
func (x *Extractor) consume(ev *Event) (*tsv.VerseRecord, error) {
	// Inside an annotation subtree everything is skipped, including
	// nested markup and text, until the subtree closes.
	if x.skipDepth > 0 {
		switch ev.Kind {
		case StartEvent:
			x.skipDepth++
		case EndEvent:
			x.skipDepth--
		}
		return nil, nil
	}

	switch ev.Kind {
	case StartEvent:
		return x.startElement(ev)
	case EndEvent:
		return x.endElement(ev), nil
	case TextEvent:
		if x.pending != nil {
			x.appendText(ev.Text)
		}
		// Text outside a verse (front matter, material between a
		// verse-end marker and the next verse) is not verse content.
		return nil, nil
	}
	return nil, nil
}

func (x *Extractor) startElement(ev *Event) (*tsv.VerseRecord, error) {
	switch {
	case ev.Name == tagBook:
		rec := x.flush()
		x.book = ev.Attrs["id"]
		x.chapter = 0
		return rec, nil

	case isChapterTag(ev.Name):
		rec := x.flush()
		if x.book == "" {
			return rec, &converrors.ContextError{Marker: "chapter", Missing: "book", Offset: ev.Offset}
		}
		n, err := parseChapter(ev.Attrs["id"], ev.Offset)
		if err != nil {
			return rec, err
		}
		x.chapter = n
		return rec, nil

	case isVerseTag(ev.Name):
		rec := x.flush()
		if x.chapter == 0 {
			return rec, &converrors.ContextError{Marker: "verse", Missing: "chapter", Offset: ev.Offset}
		}
		verse, err := parseVerse(ev.Attrs["id"], ev.Offset)
		if err != nil {
			return rec, err
		}
		x.pending = &tsv.VerseRecord{Book: x.book, Chapter: x.chapter, Verse: verse}
		return rec, nil

	case isVerseEndTag(ev.Name):
		// Explicit verse-end marker: close early so trailing material
		// (headings, paragraphs between verses) is discarded.
		return x.flush(), nil
	}

	switch x.classOf(ev.Name) {
	case TagAnnotation:
		x.skipDepth = 1
	case TagParagraph:
		if x.pending != nil {
			x.pendingSpace = true
		}
	}
	return nil, nil
}

func (x *Extractor) endElement(ev *Event) *tsv.VerseRecord {
	switch {
	case ev.Name == tagBook:
		rec := x.flush()
		x.book = ""
		x.chapter = 0
		return rec

	case isChapterTag(ev.Name):
		// Self-closing chapter markers produce an immediate end event
		// before any verse opens, so this flushes only for
		// container-style chapters.
		return x.flush()

	case isVerseTag(ev.Name), isVerseEndTag(ev.Name):
		// Verse markers are milestones; their end events carry nothing.
		return nil
	}

	if x.classOf(ev.Name) == TagParagraph && x.pending != nil {
		x.pendingSpace = true
	}
	return nil
}

// appendText folds one text chunk into the pending verse, collapsing
// whitespace runs to single spaces while preserving word boundaries
// between chunks.
func (x *Extractor) appendText(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		// Whitespace-only chunk still separates the words around it.
		if s != "" && x.buf.Len() > 0 {
			x.pendingSpace = true
		}
		return
	}

	first, _ := utf8.DecodeRuneInString(s)
	if (x.pendingSpace || unicode.IsSpace(first)) && x.buf.Len() > 0 {
		x.buf.WriteByte(' ')
	}
	for i, f := range fields {
		if i > 0 {
			x.buf.WriteByte(' ')
		}
		x.buf.WriteString(f)
	}

	last, _ := utf8.DecodeLastRuneInString(s)
	x.pendingSpace = unicode.IsSpace(last)
}

// flush emits the pending verse, if any, and resets the buffer.
// Flushing with no pending verse is a no-op.
func (x *Extractor) flush() *tsv.VerseRecord {
	if x.pending == nil {
		return nil
	}
	rec := x.pending
	rec.Text = x.buf.String()
	x.pending = nil
	x.buf.Reset()
	x.pendingSpace = false
	return rec
}

func parseChapter(value string, offset int64) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 0, &converrors.NumeralError{Attr: "chapter", Value: value, Offset: offset}
	}
	return n, nil
}

// parseVerse validates a verse attribute: a decimal >= 1 or a bridge
// "N-M" covering printed verses merged in the source. Bridges are
// preserved verbatim as one record; splitting them would require text
// boundaries the source does not mark.
func parseVerse(value string, offset int64) (string, error) {
	v := strings.TrimSpace(value)
	first, rest, bridged := strings.Cut(v, "-")
	n, err := strconv.Atoi(first)
	if err != nil || n < 1 {
		return "", &converrors.NumeralError{Attr: "verse", Value: value, Offset: offset}
	}
	if bridged {
		m, err := strconv.Atoi(rest)
		if err != nil || m < 1 {
			return "", &converrors.NumeralError{Attr: "verse", Value: value, Offset: offset}
		}
	}
	return v, nil
}
