package tokenizer_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/htmltext"
	"github.com/fwojciec/htmltext/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Splitter implements htmltext.Splitter at compile time.
var _ htmltext.Splitter = (*tokenizer.Splitter)(nil)

func TestSplitter_Split(t *testing.T) {
	t.Parallel()

	t.Run("cuts boundaries around block-level tags", func(t *testing.T) {
		t.Parallel()

		s := tokenizer.NewSplitter()
		chunks, err := s.Split(`<div>pre<p>x</p>post</div>`)

		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Equal(t, `<div>pre`, chunks[0].Raw)
		assert.Equal(t, `<p>x</p>`, chunks[1].Raw)
		assert.Equal(t, `post</div>`, chunks[2].Raw)
	})

	t.Run("keeps inline markup inside a chunk", func(t *testing.T) {
		t.Parallel()

		s := tokenizer.NewSplitter()
		chunks, err := s.Split(`<p>one <em>two</em> <a href="/x">three</a></p>`)

		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, `<p>one <em>two</em> <a href="/x">three</a></p>`, chunks[0].Raw)
	})

	t.Run("emits an empty block element as its own chunk", func(t *testing.T) {
		t.Parallel()

		s := tokenizer.NewSplitter()
		chunks, err := s.Split(`<p></p><p>text</p>`)

		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, `<p></p>`, chunks[0].Raw)
		assert.Equal(t, `<p>text</p>`, chunks[1].Raw)
	})

	t.Run("treats a void block tag as a complete chunk", func(t *testing.T) {
		t.Parallel()

		s := tokenizer.NewSplitter()
		chunks, err := s.Split(`<p>a</p><hr><p>b</p>`)

		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Equal(t, `<hr>`, chunks[1].Raw)
	})

	t.Run("respects a custom block-tag set", func(t *testing.T) {
		t.Parallel()

		s := tokenizer.NewSplitter(tokenizer.WithBlockTags("section"))
		chunks, err := s.Split(`<section>a</section><p>b</p>`)

		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, `<section>a</section>`, chunks[0].Raw)
		assert.Equal(t, `<p>b</p>`, chunks[1].Raw)
	})
}

func TestSplitter_LosslessPartition(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<div>pre<p>x</p>post</div>`,
		`<html><head><title>t</title></head><body><p>a</p><p>b</p></body></html>`,
		`<ul><li><a href="/">Home</a></li><li><a href="/a">About</a></li></ul>`,
		`<p>Fish &amp; chips</p>`,
		`text with no markup at all`,
		`<p class="lead" id="first">attrs survive</p>`,
		`<p>a</p><di`,
		`<p>truncated <a href="/x`,
		``,
	}

	for _, input := range inputs {
		s := tokenizer.NewSplitter()
		chunks, err := s.Split(input)
		require.NoError(t, err)

		var b strings.Builder
		for _, c := range chunks {
			b.WriteString(c.Raw)
		}
		assert.Equal(t, input, b.String())
	}
}

func TestSplitter_Deterministic(t *testing.T) {
	t.Parallel()

	input := `<div><p>a</p><ul><li>b</li></ul></div>`

	s := tokenizer.NewSplitter()
	first, err := s.Split(input)
	require.NoError(t, err)
	second, err := s.Split(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSplitter_TagWriter(t *testing.T) {
	t.Parallel()

	t.Run("name-only writer discards attributes", func(t *testing.T) {
		t.Parallel()

		s := tokenizer.NewSplitter(tokenizer.WithTagWriter(tokenizer.WriteTagNameOnly))
		chunks, err := s.Split(`<p class="lead"><a href="/x">text</a></p>`)

		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, `<p><a>text</a></p>`, chunks[0].Raw)
	})

	t.Run("attribute writer normalizes attribute quoting", func(t *testing.T) {
		t.Parallel()

		s := tokenizer.NewSplitter(tokenizer.WithTagWriter(tokenizer.WriteTagWithAttrs))
		chunks, err := s.Split(`<p class=lead>text</p>`)

		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, `<p class="lead">text</p>`, chunks[0].Raw)
	})
}
