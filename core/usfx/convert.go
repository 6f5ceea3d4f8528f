package usfx

import (
	"io"

	"github.com/FocuswithJustin/usfx2tsv/core/tsv"
)

// Convert streams a USFX document from r to out as TSV, one line per
// verse, and returns the number of records written. Records written
// before a failure remain in the output; the caller decides whether a
// truncated file is kept.
func Convert(r io.Reader, out *tsv.Writer) (int, error) {
	x := New(NewDecoderSource(r))
	for {
		rec, err := x.Next()
		if err == io.EOF {
			return out.Count(), out.Flush()
		}
		if err != nil {
			// Flush what was already emitted before surfacing the error.
			if ferr := out.Flush(); ferr != nil {
				return out.Count(), ferr
			}
			return out.Count(), err
		}
		if werr := out.Write(rec); werr != nil {
			return out.Count(), werr
		}
	}
}
