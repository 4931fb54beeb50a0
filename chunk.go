package htmltext

// Chunk is a contiguous run of markup produced by a Splitter. The greater
// its weight, the greater the likelihood it contains useful prose rather
// than navigational boilerplate.
type Chunk struct {
	// Raw is the chunk's markup exactly as split from the document.
	Raw string

	// Text is the chunk's plain text with tags stripped and whitespace
	// normalized. Populated by a ChunkCleaner.
	Text string

	// TextLen is the number of characters in Text.
	TextLen int

	// LinkTextLen is the number of characters of Text that were nested
	// inside the configured link tag. Always 0 <= LinkTextLen <= TextLen.
	LinkTextLen int
}

// Weight scores the chunk by how much of it is prose vs. navigation.
// A chunk consisting entirely of link text scores <= 0, while a prose
// paragraph with a single inline link scores close to its full length.
func (c *Chunk) Weight() float64 {
	return float64(c.TextLen - c.LinkTextLen)
}

// StripResult holds the output of stripping markup from a chunk.
type StripResult struct {
	Text        string
	TextLen     int
	LinkTextLen int
}

// Splitter breaks an HTML document into an ordered sequence of chunks.
// Concatenating the chunks' raw markup reconstructs the splitter's input
// exactly; the partition is a pure function of the input and the
// configured block-tag set.
type Splitter interface {
	Split(html string) ([]Chunk, error)
}

// ChunkCleaner strips markup from a chunk, returning its plain text and,
// when configured to weigh, the lengths used to compute the chunk weight.
type ChunkCleaner interface {
	Strip(markup string) StripResult
}
