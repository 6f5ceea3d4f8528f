// Package errors provides standardized error types for USFX conversion.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion failure kinds. All are terminal:
// a failed conversion is never retried and never emits further records.
var (
	// ErrMalformedXML indicates the tokenizer could not produce
	// well-formed events (unclosed tags, invalid bytes).
	ErrMalformedXML = errors.New("malformed xml")
	// ErrMissingContext indicates a chapter or verse marker appeared
	// before its required enclosing context.
	ErrMissingContext = errors.New("missing context")
	// ErrInvalidNumeral indicates a chapter or verse attribute that is
	// not a decimal number or verse bridge.
	ErrInvalidNumeral = errors.New("invalid numeral")
)

// ContextError reports a structural marker encountered without its
// required enclosing context (chapter without book, verse without
// chapter).
type ContextError struct {
	Marker  string // marker that appeared (e.g. "verse")
	Missing string // context that was absent (e.g. "chapter")
	Offset  int64  // byte offset in the input, if known
	Err     error  // underlying error, if any
}

func (e *ContextError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%s marker at offset %d without an active %s", e.Marker, e.Offset, e.Missing)
	}
	return fmt.Sprintf("%s marker without an active %s", e.Marker, e.Missing)
}

func (e *ContextError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMissingContext
}

// NumeralError reports a chapter or verse attribute that could not be
// interpreted as a decimal number or verse bridge.
type NumeralError struct {
	Attr   string // attribute name (e.g. "id")
	Value  string // offending value
	Offset int64  // byte offset in the input, if known
	Err    error  // underlying error, if any
}

func (e *NumeralError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("invalid %s numeral %q at offset %d", e.Attr, e.Value, e.Offset)
	}
	return fmt.Sprintf("invalid %s numeral %q", e.Attr, e.Value)
}

func (e *NumeralError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidNumeral
}

// ParseError wraps a tokenizer failure with its input offset.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("xml parse error at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("xml parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedXML, e.Err}
	}
	return []error{ErrMalformedXML}
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need to import both packages.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Re-exported so callers don't need to import both packages.
func As(err error, target any) bool {
	return errors.As(err, target)
}
