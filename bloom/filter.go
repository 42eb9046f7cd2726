// Package bloom provides probabilistic URL deduplication for the crawl frontier.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers URLs that were already queued.
// It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected URLs with the given
// false positive rate. A false positive makes the crawl skip a page it
// has not visited; it never visits a page twice.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether url may have been recorded.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// Visit records url and reports whether it is new.
func (f *Filter) Visit(url string) bool {
	return !f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
