package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/htmltext"
	"golang.org/x/net/html"
)

// Ensure ChunkCleaner implements htmltext.ChunkCleaner at compile time.
var _ htmltext.ChunkCleaner = (*ChunkCleaner)(nil)

// ChunkCleaner strips markup from chunks. In weigh mode (the default) it
// also accumulates the length of text nested inside the configured link
// tag, which is what separates navigational boilerplate from prose.
type ChunkCleaner struct {
	linkTag    string
	countLinks bool
}

// ChunkCleanerOption configures a ChunkCleaner.
type ChunkCleanerOption func(*ChunkCleaner)

// WithLinkTag overrides the tag treated as a link. Defaults to "a".
func WithLinkTag(name string) ChunkCleanerOption {
	return func(c *ChunkCleaner) {
		c.linkTag = strings.ToLower(name)
	}
}

// WithoutLinkCounting puts the cleaner in strip-only mode: markup is
// removed but no link length is accumulated. Used for save-tag content,
// which is captured rather than weighed.
func WithoutLinkCounting() ChunkCleanerOption {
	return func(c *ChunkCleaner) {
		c.countLinks = false
	}
}

// NewChunkCleaner creates a ChunkCleaner in weigh mode with "a" as the
// link tag.
func NewChunkCleaner(opts ...ChunkCleanerOption) *ChunkCleaner {
	c := &ChunkCleaner{linkTag: "a", countLinks: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Strip removes all markup from the chunk. Character references are
// resolved and whitespace is normalized, so stripping an already
// tag-free, normalized text is the identity. The result guarantees
// 0 <= LinkTextLen <= TextLen.
func (c *ChunkCleaner) Strip(markup string) htmltext.StripResult {
	var text, linkText strings.Builder
	linkDepth := 0

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken:
			if name, _ := z.TagName(); c.countLinks && tagName(name) == c.linkTag {
				linkDepth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); c.countLinks && tagName(name) == c.linkTag && linkDepth > 0 {
				linkDepth--
			}
		case html.TextToken:
			data := z.Text()
			text.Write(data)
			if linkDepth > 0 {
				linkText.Write(data)
			}
		}
	}

	res := htmltext.StripResult{
		Text: htmltext.NormalizeSpace(text.String()),
	}
	res.TextLen = utf8.RuneCountInString(res.Text)
	res.LinkTextLen = utf8.RuneCountInString(htmltext.NormalizeSpace(linkText.String()))
	if res.LinkTextLen > res.TextLen {
		res.LinkTextLen = res.TextLen
	}
	return res
}
