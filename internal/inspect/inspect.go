// Package inspect reports DOM-level summaries of USFX documents. It is
// a diagnostic aid for checking a source file before conversion; the
// converter itself streams and never builds a DOM.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// BookSummary describes one book division of a USFX document.
type BookSummary struct {
	Code     string `json:"code"`
	Chapters int    `json:"chapters"`
	Verses   int    `json:"verses"`
}

// Summary describes a USFX document.
type Summary struct {
	Language string        `json:"language,omitempty"`
	Books    []BookSummary `json:"books"`
	Chapters int           `json:"chapters"`
	Verses   int           `json:"verses"`
}

// Summarize parses a USFX document and tallies its structure.
func Summarize(r io.Reader) (*Summary, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	s := &Summary{}

	if lang, err := xmlquery.Query(doc, "//languageCode"); err == nil && lang != nil {
		s.Language = strings.TrimSpace(lang.InnerText())
	}

	books, err := xmlquery.QueryAll(doc, "//book")
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	for _, b := range books {
		bs := BookSummary{Code: b.SelectAttr("id")}
		chapters, err := xmlquery.QueryAll(b, ".//c | .//chapter")
		if err != nil {
			return nil, fmt.Errorf("querying chapters: %w", err)
		}
		verses, err := xmlquery.QueryAll(b, ".//v | .//verse")
		if err != nil {
			return nil, fmt.Errorf("querying verses: %w", err)
		}
		bs.Chapters = len(chapters)
		bs.Verses = len(verses)
		s.Chapters += bs.Chapters
		s.Verses += bs.Verses
		s.Books = append(s.Books, bs)
	}

	return s, nil
}

// Query runs an arbitrary XPath expression against the document and
// returns the inner text of each matching node. The expression is
// compiled first so invalid queries fail with a useful error.
func Query(r io.Reader, expr string) ([]string, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	nodes, err := xmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}

	results := make([]string, 0, len(nodes))
	for _, n := range nodes {
		results = append(results, strings.TrimSpace(n.InnerText()))
	}
	return results, nil
}
