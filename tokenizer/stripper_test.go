package tokenizer_test

import (
	"testing"

	"github.com/fwojciec/htmltext"
	"github.com/fwojciec/htmltext/tokenizer"
	"github.com/stretchr/testify/assert"
)

// Ensure ChunkCleaner implements htmltext.ChunkCleaner at compile time.
var _ htmltext.ChunkCleaner = (*tokenizer.ChunkCleaner)(nil)

func TestChunkCleaner_Strip(t *testing.T) {
	t.Parallel()

	t.Run("removes all markup", func(t *testing.T) {
		t.Parallel()

		c := tokenizer.NewChunkCleaner()
		res := c.Strip(`<div><p>test paragraph?!</p></div>`)

		assert.Equal(t, "test paragraph?!", res.Text)
		assert.Equal(t, 16, res.TextLen)
		assert.Zero(t, res.LinkTextLen)
	})

	t.Run("counts link text including nested links", func(t *testing.T) {
		t.Parallel()

		c := tokenizer.NewChunkCleaner()
		res := c.Strip(`<p><a href="#">asd<a href="#">asd</a>asd</a>asd</p>`)

		assert.Equal(t, "asdasdasdasd", res.Text)
		assert.Equal(t, 12, res.TextLen)
		assert.Equal(t, 9, res.LinkTextLen)
	})

	t.Run("counts a custom link tag", func(t *testing.T) {
		t.Parallel()

		c := tokenizer.NewChunkCleaner(tokenizer.WithLinkTag("link-to"))
		res := c.Strip(`<p><link-to>nav</link-to> prose</p>`)

		assert.Equal(t, 3, res.LinkTextLen)
	})

	t.Run("strip-only mode skips link accounting", func(t *testing.T) {
		t.Parallel()

		c := tokenizer.NewChunkCleaner(tokenizer.WithoutLinkCounting())
		res := c.Strip(`<p><a href="#">all link text</a></p>`)

		assert.Equal(t, "all link text", res.Text)
		assert.Zero(t, res.LinkTextLen)
	})

	t.Run("resolves character references", func(t *testing.T) {
		t.Parallel()

		c := tokenizer.NewChunkCleaner()
		res := c.Strip(`<p>a &amp; b</p>`)

		assert.Equal(t, "a & b", res.Text)
		assert.Equal(t, 5, res.TextLen)
	})

	t.Run("normalizes whitespace between tags", func(t *testing.T) {
		t.Parallel()

		c := tokenizer.NewChunkCleaner()
		res := c.Strip("<div>\n  <p>one</p>\n  <p>two</p>\n</div>")

		assert.Equal(t, "one two", res.Text)
	})
}

func TestChunkCleaner_Idempotent(t *testing.T) {
	t.Parallel()

	c := tokenizer.NewChunkCleaner()

	once := c.Strip(`<p>already stripped, oddly punctuated?! text</p>`)
	twice := c.Strip(once.Text)

	assert.Equal(t, once.Text, twice.Text)
	assert.Equal(t, once.TextLen, twice.TextLen)
}

func TestChunkCleaner_LinkLengthNeverExceedsTextLength(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<a href="#">all of it</a>`,
		`<p>prose <a href="#">link</a> prose</p>`,
		`<p>no links here</p>`,
		`<a>unclosed link text`,
		``,
	}

	c := tokenizer.NewChunkCleaner()
	for _, input := range inputs {
		res := c.Strip(input)
		assert.GreaterOrEqual(t, res.LinkTextLen, 0)
		assert.LessOrEqual(t, res.LinkTextLen, res.TextLen)
	}
}
