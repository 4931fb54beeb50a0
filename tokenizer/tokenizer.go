// Package tokenizer implements the cleaning, splitting, weighing and
// extraction pipelines on top of the golang.org/x/net/html tokenizer.
// All components consume the document as a stream of start-tag, end-tag
// and text events in document order, tolerate malformed nesting, and hold
// no state across documents.
package tokenizer

import (
	"strings"

	"golang.org/x/net/html"
)

// voidElements never hold content, so a start tag is also the end of the
// element. Treating them as self-contained keeps removal and save tracking
// from swallowing the rest of the document when one appears in a tag set.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// TagWriter renders a tag token into chunk markup. The default writer
// passes the source bytes through unchanged; alternates may drop or
// reformat attributes.
type TagWriter func(tok html.Token) string

// WriteTagWithAttrs renders a tag preserving its attribute name/value
// pairs in source order. Duplicate attribute names keep the last value,
// matching tokenizer behavior.
func WriteTagWithAttrs(tok html.Token) string {
	var b strings.Builder
	b.WriteByte('<')
	if tok.Type == html.EndTagToken {
		b.WriteByte('/')
	}
	b.WriteString(tok.Data)
	if tok.Type != html.EndTagToken {
		for _, attr := range tok.Attr {
			b.WriteByte(' ')
			b.WriteString(attr.Key)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(attr.Val))
			b.WriteByte('"')
		}
	}
	if tok.Type == html.SelfClosingTagToken {
		b.WriteByte('/')
	}
	b.WriteByte('>')
	return b.String()
}

// WriteTagNameOnly renders a tag without its attributes.
func WriteTagNameOnly(tok html.Token) string {
	switch tok.Type {
	case html.EndTagToken:
		return "</" + tok.Data + ">"
	case html.SelfClosingTagToken:
		return "<" + tok.Data + "/>"
	default:
		return "<" + tok.Data + ">"
	}
}

// tagName lowercases a tag name captured from the tokenizer.
func tagName(b []byte) string {
	return strings.ToLower(string(b))
}
