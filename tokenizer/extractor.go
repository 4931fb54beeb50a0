package tokenizer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/htmltext"
	"golang.org/x/net/html"
)

// Ensure Extractor implements htmltext.Extractor at compile time.
var _ htmltext.Extractor = (*Extractor)(nil)

// DefaultPunctuation is the set of punctuation marks used for
// punctuation-aware joining of kept chunks.
const DefaultPunctuation = ".,!?:;"

// Wrapper transforms a piece of extracted text before it is emitted.
type Wrapper func(string) string

// Extractor extracts useful text from HTML documents. The document is
// processed in a single forward direction: save-tag subtrees are captured
// into a side-channel, the remaining stream is filtered through the
// removal cleaner, split into chunks, and each chunk is kept iff its
// weight clears the configured threshold.
//
// Configuration is immutable after construction. Feed resets all transient
// state, so one instance can process consecutive documents; concurrent use
// requires one instance per document.
type Extractor struct {
	tagsToSave   htmltext.TagSet
	tagsToRemove htmltext.TagSet
	punctuation  map[rune]bool
	minWeight    float64
	saveAttrs    bool
	linkTag      string

	chunkWrapper  Wrapper
	chunksWrapper Wrapper
	saveWrapper   Wrapper
	tagWriter     TagWriter

	remover      *Cleaner
	splitter     htmltext.Splitter
	chunkCleaner htmltext.ChunkCleaner
	saveCleaner  htmltext.ChunkCleaner

	data   string
	chunks []htmltext.Chunk
	saved  map[string][]string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithSaveTags sets the tags whose text is captured into the side-channel
// instead of being weight-filtered.
func WithSaveTags(names ...string) ExtractorOption {
	return func(e *Extractor) {
		e.tagsToSave = htmltext.NewTagSet(names...)
	}
}

// WithRemoveTags sets the tags removed entirely, including their text.
func WithRemoveTags(names ...string) ExtractorOption {
	return func(e *Extractor) {
		e.tagsToRemove = htmltext.NewTagSet(names...)
	}
}

// WithMinWeight sets the minimum allowed chunk weight. A chunk appears in
// the output iff its weight is greater than or equal to this threshold.
func WithMinWeight(w float64) ExtractorOption {
	return func(e *Extractor) {
		e.minWeight = w
	}
}

// WithPunctuation overrides the punctuation marks considered during
// joining. Defaults to DefaultPunctuation.
func WithPunctuation(marks string) ExtractorOption {
	return func(e *Extractor) {
		e.punctuation = make(map[rune]bool, len(marks))
		for _, r := range marks {
			e.punctuation[r] = true
		}
	}
}

// WithSaveAttrs preserves attribute name/value pairs in chunk markup.
// By default tags inside chunks are rendered name-only.
func WithSaveAttrs() ExtractorOption {
	return func(e *Extractor) {
		e.saveAttrs = true
	}
}

// WithExtractorLinkTag overrides the tag treated as a link when weighing
// chunks. Defaults to "a".
func WithExtractorLinkTag(name string) ExtractorOption {
	return func(e *Extractor) {
		e.linkTag = strings.ToLower(name)
	}
}

// WithChunkWrapper wraps each kept chunk's text.
func WithChunkWrapper(w Wrapper) ExtractorOption {
	return func(e *Extractor) {
		e.chunkWrapper = w
	}
}

// WithChunksWrapper wraps the whole joined output.
func WithChunksWrapper(w Wrapper) ExtractorOption {
	return func(e *Extractor) {
		e.chunksWrapper = w
	}
}

// WithSaveChunksWrapper wraps each saved value.
func WithSaveChunksWrapper(w Wrapper) ExtractorOption {
	return func(e *Extractor) {
		e.saveWrapper = w
	}
}

// WithExtractorTagWriter overrides the renderer for tag markup inside
// chunks. Takes precedence over WithSaveAttrs.
func WithExtractorTagWriter(w TagWriter) ExtractorOption {
	return func(e *Extractor) {
		e.tagWriter = w
	}
}

// WithSplitter injects an alternate splitter implementation.
func WithSplitter(s htmltext.Splitter) ExtractorOption {
	return func(e *Extractor) {
		e.splitter = s
	}
}

// WithChunkCleaner injects an alternate cleaner for weighing chunks.
func WithChunkCleaner(c htmltext.ChunkCleaner) ExtractorOption {
	return func(e *Extractor) {
		e.chunkCleaner = c
	}
}

// WithSaveChunkCleaner injects an alternate cleaner for stripping saved
// values.
func WithSaveChunkCleaner(c htmltext.ChunkCleaner) ExtractorOption {
	return func(e *Extractor) {
		e.saveCleaner = c
	}
}

// NewExtractor creates an Extractor. A tag name present in both the save
// and remove sets is rejected with an EINVALID error: saving captures the
// tag's text while removal deletes it, and the extractor refuses to pick
// one silently. Save subtrees are always excluded from ordinary chunking,
// so listing a save tag in the remove set is never necessary.
func NewExtractor(opts ...ExtractorOption) (*Extractor, error) {
	e := &Extractor{linkTag: "a"}
	WithPunctuation(DefaultPunctuation)(e)
	for _, opt := range opts {
		opt(e)
	}

	if overlap := e.tagsToSave.Intersect(e.tagsToRemove); len(overlap) > 0 {
		sort.Strings(overlap)
		return nil, htmltext.Errorf(htmltext.EINVALID,
			"tags present in both save and remove sets: %s", strings.Join(overlap, ", "))
	}

	e.remover = NewCleaner(WithRemoveWithContent(e.tagsToRemove.Names()...))

	if e.splitter == nil {
		writer := e.tagWriter
		if writer == nil && !e.saveAttrs {
			writer = WriteTagNameOnly
		}
		if writer != nil {
			e.splitter = NewSplitter(WithTagWriter(writer))
		} else {
			e.splitter = NewSplitter()
		}
	}
	if e.chunkCleaner == nil {
		e.chunkCleaner = NewChunkCleaner(WithLinkTag(e.linkTag))
	}
	if e.saveCleaner == nil {
		e.saveCleaner = NewChunkCleaner(WithoutLinkCounting())
	}

	return e, nil
}

// Feed processes one full document to completion, replacing the results
// of any previous Feed.
func (e *Extractor) Feed(doc string) {
	e.data = ""
	e.chunks = nil
	e.saved = make(map[string][]string)

	rest := e.routeSaved(doc)
	e.remover.Feed(rest)

	chunks, err := e.splitter.Split(e.remover.Data())
	if err != nil {
		// Only injected splitters can fail; the default never does.
		return
	}

	kept := make([]string, 0, len(chunks))
	for i := range chunks {
		res := e.chunkCleaner.Strip(chunks[i].Raw)
		chunks[i].Text = res.Text
		chunks[i].TextLen = res.TextLen
		chunks[i].LinkTextLen = res.LinkTextLen

		if chunks[i].Weight() >= e.minWeight && res.Text != "" {
			text := res.Text
			if e.chunkWrapper != nil {
				text = e.chunkWrapper(text)
			}
			kept = append(kept, text)
		}
	}
	e.chunks = chunks

	out := e.join(kept)
	if e.chunksWrapper != nil {
		out = e.chunksWrapper(out)
	}
	e.data = out
}

// Data returns the extracted text of the most recently fed document.
func (e *Extractor) Data() string {
	return e.data
}

// SavedTags returns the captured save-tag text keyed by tag name, in
// document order, including duplicates when a tag name recurs. The
// returned map is a copy, so mutating it cannot affect later calls.
func (e *Extractor) SavedTags() map[string][]string {
	saved := make(map[string][]string, len(e.saved))
	for name, values := range e.saved {
		saved[name] = append([]string(nil), values...)
	}
	return saved
}

// Chunks returns all chunks of the most recently fed document with their
// computed lengths, kept or not. Useful for threshold tuning.
func (e *Extractor) Chunks() []htmltext.Chunk {
	return e.chunks
}

// routeSaved copies the document, diverting the subtree of every save tag
// into the side-channel. Capture happens upstream of removal so a save tag
// nested inside a removed element (a <title> inside a removed <head>) is
// still recorded. Nested same-named save tags fold into the outermost one.
func (e *Extractor) routeSaved(doc string) string {
	if len(e.tagsToSave) == 0 {
		return doc
	}

	var rest, buf strings.Builder
	saving := false
	saveName := ""
	depth := 0

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// Keep any truncated trailing bytes with whichever stream
			// they belong to.
			if saving {
				buf.WriteString(string(z.Raw()))
			} else {
				rest.WriteString(string(z.Raw()))
			}
			break
		}

		raw := string(z.Raw())
		name := ""
		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b, _ := z.TagName()
			name = tagName(b)
		}

		if !saving {
			if tt == html.StartTagToken && !voidElements[name] && e.tagsToSave.Contains(name) {
				saving = true
				saveName = name
				depth = 0
				buf.Reset()
				buf.WriteString(raw)
				continue
			}
			rest.WriteString(raw)
			continue
		}

		buf.WriteString(raw)
		if name != saveName {
			continue
		}
		switch tt {
		case html.StartTagToken:
			depth++
		case html.EndTagToken:
			if depth > 0 {
				depth--
			} else {
				e.appendSaved(saveName, buf.String())
				saving = false
			}
		}
	}
	if saving {
		// Unclosed at end-of-input: implicitly closed.
		e.appendSaved(saveName, buf.String())
	}

	return rest.String()
}

func (e *Extractor) appendSaved(name, markup string) {
	text := e.saveCleaner.Strip(markup).Text
	if text == "" {
		return
	}
	if e.saveWrapper != nil {
		text = e.saveWrapper(text)
	}
	e.saved[name] = append(e.saved[name], text)
}

// join concatenates kept chunk texts with single spaces, attaching a
// chunk that begins with a configured punctuation mark directly to the
// previous text and dropping the mark entirely when it would duplicate
// the trailing one.
func (e *Extractor) join(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			first, size := utf8.DecodeRuneInString(part)
			switch {
			case !e.punctuation[first]:
				b.WriteByte(' ')
			default:
				if last, _ := utf8.DecodeLastRuneInString(b.String()); last == first {
					part = strings.TrimLeft(part[size:], " ")
					if part == "" {
						continue
					}
					b.WriteByte(' ')
				}
			}
		}
		b.WriteString(part)
	}
	return b.String()
}
