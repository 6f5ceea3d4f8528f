package inspect

import (
	"strings"
	"testing"
)

const sampleUSFX = `<?xml version="1.0" encoding="UTF-8"?>
<usfx>
  <languageCode>eng</languageCode>
  <book id="GEN">
    <c id="1"/>
    <v id="1"/>In the beginning<ve/>
    <v id="2"/>And the earth<ve/>
    <c id="2"/>
    <v id="1"/>Thus the heavens<ve/>
  </book>
  <book id="EXO">
    <c id="1"/>
    <v id="1"/>Now these are the names<ve/>
  </book>
</usfx>`

func TestSummarize(t *testing.T) {
	s, err := Summarize(strings.NewReader(sampleUSFX))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if s.Language != "eng" {
		t.Errorf("Language = %q, want eng", s.Language)
	}
	if len(s.Books) != 2 {
		t.Fatalf("got %d books, want 2", len(s.Books))
	}
	if s.Books[0].Code != "GEN" || s.Books[1].Code != "EXO" {
		t.Errorf("book codes = %s, %s", s.Books[0].Code, s.Books[1].Code)
	}
	if s.Books[0].Chapters != 2 || s.Books[0].Verses != 3 {
		t.Errorf("GEN = %d chapters %d verses, want 2/3", s.Books[0].Chapters, s.Books[0].Verses)
	}
	if s.Chapters != 3 || s.Verses != 4 {
		t.Errorf("totals = %d chapters %d verses, want 3/4", s.Chapters, s.Verses)
	}
}

func TestSummarizeMalformed(t *testing.T) {
	if _, err := Summarize(strings.NewReader("<usfx><book")); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestQuery(t *testing.T) {
	results, err := Query(strings.NewReader(sampleUSFX), "//book/@id")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(results) != 2 || results[0] != "GEN" || results[1] != "EXO" {
		t.Errorf("results = %v", results)
	}
}

func TestQueryInvalidExpression(t *testing.T) {
	_, err := Query(strings.NewReader(sampleUSFX), "//book[")
	if err == nil || !strings.Contains(err.Error(), "invalid xpath") {
		t.Errorf("error = %v, want invalid xpath", err)
	}
}
