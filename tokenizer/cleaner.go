package tokenizer

import (
	"strings"

	"github.com/fwojciec/htmltext"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements htmltext.Cleaner at compile time.
var _ htmltext.Cleaner = (*Cleaner)(nil)

// Cleaner removes configured elements from HTML documents. Tags in the
// remove-without-content set are unwrapped: their markup disappears but
// their children and text pass through. Tags in the remove-with-content
// set are deleted along with everything nested inside them.
//
// Malformed markup never fails: unmatched end tags are ignored, elements
// left open at end-of-input are treated as implicitly closed, and tag name
// comparisons ignore case.
type Cleaner struct {
	removeWithoutContent htmltext.TagSet
	removeWithContent    htmltext.TagSet
	convertEntities      bool

	data strings.Builder
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithRemoveWithoutContent sets the tags whose markup is stripped while
// their content is preserved (the element is unwrapped, not deleted).
func WithRemoveWithoutContent(names ...string) CleanerOption {
	return func(c *Cleaner) {
		c.removeWithoutContent = htmltext.NewTagSet(names...)
	}
}

// WithRemoveWithContent sets the tags that are deleted together with
// everything nested inside them.
func WithRemoveWithContent(names ...string) CleanerOption {
	return func(c *Cleaner) {
		c.removeWithContent = htmltext.NewTagSet(names...)
	}
}

// WithVerbatimEntities keeps character references exactly as written
// instead of resolving them to their literal characters.
func WithVerbatimEntities() CleanerOption {
	return func(c *Cleaner) {
		c.convertEntities = false
	}
}

// NewCleaner creates a Cleaner. By default no tags are removed and
// character references are resolved.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{convertEntities: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// removalFrame tracks one element being removed with content. The depth
// counter handles nested same-named elements so an inner close does not
// end removal of the outer one.
type removalFrame struct {
	name  string
	depth int
}

// Feed processes one full document, replacing any previously cleaned data.
func (c *Cleaner) Feed(doc string) {
	c.data.Reset()

	var removal []removalFrame
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// End-of-input inside a tag leaves the truncated bytes in
			// the raw buffer. Keep them unless a removed element is
			// still open, so the empty-config round trip holds for
			// truncated documents too.
			if len(removal) == 0 {
				c.data.WriteString(string(z.Raw()))
			}
			return
		}

		// Raw must be captured before TagName or Text mutate the buffer.
		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			c.startTag(tagName(name), tt, raw, &removal)
		case html.EndTagToken:
			name, _ := z.TagName()
			c.endTag(tagName(name), raw, &removal)
		case html.TextToken:
			if len(removal) > 0 {
				continue
			}
			if c.convertEntities {
				c.data.Write(z.Text())
			} else {
				c.data.WriteString(raw)
			}
		}
		// Comments and doctypes are dropped, as in the upstream parser.
	}
}

func (c *Cleaner) startTag(name string, tt html.TokenType, raw string, removal *[]removalFrame) {
	if c.removeWithContent.Contains(name) {
		if tt == html.StartTagToken && !voidElements[name] {
			if n := len(*removal); n > 0 && (*removal)[n-1].name == name {
				(*removal)[n-1].depth++
			} else {
				*removal = append(*removal, removalFrame{name: name})
			}
		}
		return
	}
	if len(*removal) > 0 {
		return
	}
	if c.removeWithoutContent.Contains(name) {
		return
	}
	c.data.WriteString(raw)
}

func (c *Cleaner) endTag(name string, raw string, removal *[]removalFrame) {
	if c.removeWithContent.Contains(name) {
		if n := len(*removal); n > 0 && (*removal)[n-1].name == name {
			if (*removal)[n-1].depth > 0 {
				(*removal)[n-1].depth--
			} else {
				*removal = (*removal)[:n-1]
			}
		}
		// An end tag with no matching open is ignored.
		return
	}
	if len(*removal) > 0 {
		return
	}
	if c.removeWithoutContent.Contains(name) {
		return
	}
	c.data.WriteString(raw)
}

// Data returns the cleaned markup of the most recently fed document.
func (c *Cleaner) Data() string {
	return c.data.String()
}

// Clean feeds the document and returns the cleaned markup.
func (c *Cleaner) Clean(doc string) (string, error) {
	c.Feed(doc)
	return c.Data(), nil
}
