package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/htmltext"
	"github.com/fwojciec/htmltext/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements htmltext.DocumentExtractor at compile time.
var _ htmltext.DocumentExtractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()

		_, err := e.Extract("")

		require.Error(t, err)
		assert.Equal(t, htmltext.EINVALID, htmltext.ErrorCode(err))
	})

	t.Run("extracts article text", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<html><head><title>Test Article</title></head><body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>Test Article</h1>
<p>` + strings.Repeat("This paragraph carries the substance of the article. ", 10) + `</p>
<p>` + strings.Repeat("A second paragraph keeps the prose going at length. ", 10) + `</p>
</article>
<footer>Copyright</footer>
</body></html>`

		e := readability.NewExtractor()

		doc, err := e.Extract(rawHTML)

		require.NoError(t, err)
		assert.Contains(t, doc.Content, "substance of the article")
		assert.Contains(t, doc.Content, "second paragraph")
	})
}
