// Package bloom provides content deduplication using Bloom filters.
// Documents are keyed by an xxhash fingerprint of their content so batch
// runs can skip documents they have already extracted.
package bloom

import (
	"strconv"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmltext"
)

// Fingerprint computes a hash of the content using xxhash.
func Fingerprint(content string) string {
	h := xxhash.Sum64String(content)
	return strconv.FormatUint(h, 16)
}

// Ensure Filter implements htmltext.SeenFilter at compile time.
var _ htmltext.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter keyed by content fingerprints.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected items with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records the content as seen.
func (f *Filter) Add(content string) {
	f.f.AddString(Fingerprint(content))
}

// Seen returns true if the content might have been seen before.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(content string) bool {
	return f.f.TestString(Fingerprint(content))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
