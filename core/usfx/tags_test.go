package usfx

import (
	"strings"
	"testing"
)

func TestDefaultTagClasses(t *testing.T) {
	x := New(&sliceSource{})

	tests := []struct {
		tag  string
		want TagClass
	}{
		{"f", TagAnnotation},
		{"x", TagAnnotation},
		{"s", TagAnnotation},
		{"mt", TagAnnotation},
		{"p", TagParagraph},
		{"q1", TagParagraph},
		{"w", TagContentBearing},
		{"add", TagContentBearing},
		{"wj", TagContentBearing},
		// Unknown inline markup keeps its text rather than dropping
		// scripture words.
		{"totally-unknown", TagContentBearing},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := x.classOf(tt.tag); got != tt.want {
				t.Errorf("classOf(%q) = %d, want %d", tt.tag, got, tt.want)
			}
		})
	}
}

func TestTagClassOverride(t *testing.T) {
	// A caller who knows its source abuses add for editorial comments
	// can reclassify it without touching the default table.
	doc := `<usfx><book id="GEN"><chapter id="1"><verse id="1"/>kept <add>dropped</add>also kept</chapter></book></usfx>`

	classes := map[string]TagClass{"add": TagAnnotation}
	x := NewWithOptions(NewDecoderSource(strings.NewReader(doc)), Options{TagClasses: classes})
	records, err := x.ExtractAll()
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Text != "kept also kept" {
		t.Errorf("text = %q, want %q", records[0].Text, "kept also kept")
	}

	// With an override table, unlisted tags still default to
	// content-bearing, not to the built-in table.
	if got := x.classOf("f"); got != TagContentBearing {
		t.Errorf("classOf(f) under override table = %d, want TagContentBearing", got)
	}
}

func TestMarkerNameAliases(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		yes   []string
		no    []string
	}{
		{"chapter", isChapterTag, []string{"c", "chapter"}, []string{"ch", "book"}},
		{"verse", isVerseTag, []string{"v", "verse"}, []string{"ve", "vs"}},
		{"verse-end", isVerseEndTag, []string{"ve", "verse-end"}, []string{"v", "end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range tt.yes {
				if !tt.check(n) {
					t.Errorf("%q not recognized as %s marker", n, tt.name)
				}
			}
			for _, n := range tt.no {
				if tt.check(n) {
					t.Errorf("%q wrongly recognized as %s marker", n, tt.name)
				}
			}
		})
	}
}
