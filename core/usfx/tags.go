package usfx

// TagClass says how the extractor treats an element encountered inside
// the document. The classification is an explicit table because it is
// the one place USFX domain knowledge accumulates; callers may override
// it via Options.TagClasses.
type TagClass int

const (
	// TagContentBearing marks inline markup whose text content belongs
	// to the verse (words, added text, divine names).
	TagContentBearing TagClass = iota
	// TagAnnotation marks markup whose entire subtree is excluded from
	// verse text (footnotes, cross-references, headings).
	TagAnnotation
	// TagParagraph marks block-level markup; crossing its boundary
	// inside a verse contributes a single word boundary.
	TagParagraph
)

// Structural marker names. Both the canonical USFX short names and the
// long spellings are accepted, since sources use either.
const (
	tagBook = "book"
)

func isChapterTag(name string) bool { return name == "c" || name == "chapter" }
func isVerseTag(name string) bool   { return name == "v" || name == "verse" }
func isVerseEndTag(name string) bool {
	return name == "ve" || name == "verse-end"
}

// defaultTagClasses is the USFX content/annotation table. Elements not
// listed are content-bearing: unknown inline markup keeps its text,
// which loses formatting but never drops scripture words.
var defaultTagClasses = map[string]TagClass{
	// Footnotes and their parts.
	"f":  TagAnnotation,
	"fe": TagAnnotation,
	"ef": TagAnnotation,
	// Cross-references and their parts.
	"x":  TagAnnotation,
	"ex": TagAnnotation,
	// Section headings and titles.
	"s":   TagAnnotation,
	"s1":  TagAnnotation,
	"s2":  TagAnnotation,
	"s3":  TagAnnotation,
	"s4":  TagAnnotation,
	"mt":  TagAnnotation,
	"mt1": TagAnnotation,
	"mt2": TagAnnotation,
	"mt3": TagAnnotation,
	"r":   TagAnnotation,
	"rq":  TagAnnotation,
	// Identification and front matter.
	"id":  TagAnnotation,
	"ide": TagAnnotation,
	"h":   TagAnnotation,
	"toc": TagAnnotation,

	// Block-level containers.
	"p":  TagParagraph,
	"m":  TagParagraph,
	"q":  TagParagraph,
	"q1": TagParagraph,
	"q2": TagParagraph,
	"q3": TagParagraph,
	"l":  TagParagraph,
	"li": TagParagraph,
	"d":  TagParagraph,
	"b":  TagParagraph,

	// Content-bearing inline markup, listed for review even though the
	// default for unknown tags is the same.
	"w":   TagContentBearing,
	"add": TagContentBearing,
	"nd":  TagContentBearing,
	"wj":  TagContentBearing,
	"qt":  TagContentBearing,
	"tl":  TagContentBearing,
	"k":   TagContentBearing,
	"pn":  TagContentBearing,
	"sc":  TagContentBearing,
	"it":  TagContentBearing,
	"bd":  TagContentBearing,
	"em":  TagContentBearing,
}

// classOf resolves the class of a tag against the configured table.
func (x *Extractor) classOf(name string) TagClass {
	if c, ok := x.opts.TagClasses[name]; ok {
		return c
	}
	return TagContentBearing
}
