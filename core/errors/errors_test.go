package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestContextError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ContextError
		wantMsg string
	}{
		{
			name:    "with offset",
			err:     &ContextError{Marker: "verse", Missing: "chapter", Offset: 42},
			wantMsg: "verse marker at offset 42 without an active chapter",
		},
		{
			name:    "without offset",
			err:     &ContextError{Marker: "chapter", Missing: "book"},
			wantMsg: "chapter marker without an active book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrMissingContext) {
				t.Error("ContextError does not match ErrMissingContext")
			}
		})
	}
}

func TestNumeralError(t *testing.T) {
	err := &NumeralError{Attr: "chapter", Value: "one", Offset: 7}
	if got := err.Error(); got != `invalid chapter numeral "one" at offset 7` {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrInvalidNumeral) {
		t.Error("NumeralError does not match ErrInvalidNumeral")
	}
}

func TestParseError(t *testing.T) {
	underlying := fmt.Errorf("unexpected EOF")
	err := &ParseError{Offset: 100, Err: underlying}

	if !errors.Is(err, ErrMalformedXML) {
		t.Error("ParseError does not match ErrMalformedXML")
	}
	if !errors.Is(err, underlying) {
		t.Error("ParseError does not expose the underlying tokenizer error")
	}

	bare := &ParseError{Err: fmt.Errorf("boom")}
	if got := bare.Error(); got != "xml parse error: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrappedThroughFmt(t *testing.T) {
	inner := &ContextError{Marker: "verse", Missing: "chapter"}
	wrapped := fmt.Errorf("converting input.xml: %w", inner)

	if !Is(wrapped, ErrMissingContext) {
		t.Error("wrapped error lost its sentinel")
	}
	var cerr *ContextError
	if !As(wrapped, &cerr) {
		t.Error("wrapped error lost its type")
	}
}
