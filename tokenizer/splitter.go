package tokenizer

import (
	"strings"

	"github.com/fwojciec/htmltext"
	"golang.org/x/net/html"
)

// Ensure Splitter implements htmltext.Splitter at compile time.
var _ htmltext.Splitter = (*Splitter)(nil)

// DefaultBlockTags are the tag names whose start and end always force a
// chunk boundary.
var DefaultBlockTags = []string{
	"html", "head", "body", "div", "p",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li", "dl", "dt", "dd",
	"table", "thead", "tbody", "tfoot", "tr", "td", "th",
	"blockquote", "pre", "hr", "form", "fieldset", "address",
	"section", "article", "header", "footer", "nav", "aside", "main",
	"figure", "figcaption",
}

// Splitter breaks an HTML document into contiguous chunks. A boundary is
// emitted immediately before the start tag and immediately after the end
// tag of any block-level tag; inline events and text between boundaries
// accumulate into the current chunk. With the default tag writer the
// partition is lossless: concatenating all chunks reproduces the input
// exactly.
type Splitter struct {
	blockTags htmltext.TagSet
	writeTag  TagWriter
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter)

// WithBlockTags overrides the set of block-level tag names.
func WithBlockTags(names ...string) SplitterOption {
	return func(s *Splitter) {
		s.blockTags = htmltext.NewTagSet(names...)
	}
}

// WithTagWriter replaces the renderer used for tag markup inside chunks.
// The default preserves the source bytes unchanged; substituting a writer
// trades losslessness for normalized output (e.g. WriteTagNameOnly to
// discard attributes).
func WithTagWriter(w TagWriter) SplitterOption {
	return func(s *Splitter) {
		s.writeTag = w
	}
}

// NewSplitter creates a Splitter with the default block-tag set.
func NewSplitter(opts ...SplitterOption) *Splitter {
	s := &Splitter{
		blockTags: htmltext.NewTagSet(DefaultBlockTags...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split partitions the document into chunks. Identical input always
// yields an identical chunk sequence.
func (s *Splitter) Split(doc string) ([]htmltext.Chunk, error) {
	var chunks []htmltext.Chunk
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		chunks = append(chunks, htmltext.Chunk{Raw: cur.String()})
		cur.Reset()
	}

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// End-of-input inside a tag leaves the truncated bytes in
			// the raw buffer. Keep them so the partition stays lossless.
			cur.WriteString(string(z.Raw()))
			break
		}

		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			block := s.blockTags.Contains(tagName(name))
			if block {
				flush()
			}
			cur.WriteString(s.renderTag(tt, raw))
			// A block element with no possible content is a complete
			// chunk on its own.
			if block && (tt == html.SelfClosingTagToken || voidElements[tagName(name)]) {
				flush()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			cur.WriteString(s.renderTag(tt, raw))
			if s.blockTags.Contains(tagName(name)) {
				flush()
			}
		default:
			// Text, comments and doctypes stay verbatim so the
			// partition remains lossless.
			cur.WriteString(raw)
		}
	}
	flush()

	return chunks, nil
}

func (s *Splitter) renderTag(tt html.TokenType, raw string) string {
	if s.writeTag == nil {
		return raw
	}
	tok := parseTagToken(tt, raw)
	return s.writeTag(tok)
}

// parseTagToken re-tokenizes a single raw tag so a TagWriter can work
// with a structured token.
func parseTagToken(tt html.TokenType, raw string) html.Token {
	z := html.NewTokenizer(strings.NewReader(raw))
	if z.Next() == html.ErrorToken {
		return html.Token{Type: tt}
	}
	tok := z.Token()
	tok.Type = tt
	return tok
}
