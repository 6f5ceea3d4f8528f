package usfx

import (
	"encoding/xml"
	"io"

	converrors "github.com/FocuswithJustin/usfx2tsv/core/errors"
)

// EventKind identifies the kind of a structural event.
type EventKind int

const (
	// StartEvent is a tag-open event carrying a name and attributes.
	StartEvent EventKind = iota
	// EndEvent is a tag-close event carrying a name.
	EndEvent
	// TextEvent is a text-chunk event carrying raw character data.
	TextEvent
)

// Event is one structural event from an XML document: a tag open, a tag
// close, or a chunk of character data. Self-closing tags arrive as a
// StartEvent immediately followed by an EndEvent.
type Event struct {
	Kind   EventKind
	Name   string            // element local name, for Start/End
	Attrs  map[string]string // attributes by local name, for Start
	Text   string            // raw character data, for Text
	Offset int64             // byte offset in the input, for error reporting
}

// EventSource yields structural events in document order. Next returns
// io.EOF after the last event. Implementations are single-pass and not
// restartable.
//
// The extractor depends only on this interface, so the concrete XML
// tokenizer is substitutable.
type EventSource interface {
	Next() (*Event, error)
}

// decoderSource adapts encoding/xml's pull decoder to EventSource.
type decoderSource struct {
	dec *xml.Decoder
}

// NewDecoderSource returns an EventSource backed by an
// encoding/xml.Decoder reading from r. Entity expansion is limited to
// the predefined XML entities.
func NewDecoderSource(r io.Reader) EventSource {
	dec := xml.NewDecoder(r)
	// No external or internal DTD entities; only &lt; &amp; etc.
	dec.Entity = map[string]string{}
	return &decoderSource{dec: dec}
}

func (s *decoderSource) Next() (*Event, error) {
	for {
		offset := s.dec.InputOffset()
		tok, err := s.dec.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, &converrors.ParseError{Offset: offset, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}
			return &Event{Kind: StartEvent, Name: t.Name.Local, Attrs: attrs, Offset: offset}, nil
		case xml.EndElement:
			return &Event{Kind: EndEvent, Name: t.Name.Local, Offset: offset}, nil
		case xml.CharData:
			return &Event{Kind: TextEvent, Text: string(t), Offset: offset}, nil
		default:
			// Comments, directives, and processing instructions carry
			// no verse content.
			continue
		}
	}
}
