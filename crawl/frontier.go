package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/llmstxt/bloom"
)

// Link is a queued URL and its distance in link hops from the seed.
type Link struct {
	URL   string
	Depth int
}

// Frontier is an in-memory URL queue ordered by depth with Bloom filter
// deduplication. Links of equal depth pop in the order they were pushed.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
	seq   int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push queues url at depth. Returns false if the URL has already been seen.
// URLs differing only by fragment are duplicates.
func (f *Frontier) Push(url string, depth int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url = stripFragment(url)
	if !f.seen.Visit(url) {
		return false
	}

	heap.Push(f.queue, queued{Link: Link{URL: url, Depth: depth}, seq: f.seq})
	f.seq++
	return true
}

// Pop returns the shallowest queued link.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (Link, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return Link{}, false
	}
	q, _ := heap.Pop(f.queue).(queued)
	return q.Link, true
}

// PopLevel removes and returns up to limit links sharing the shallowest
// queued depth. A limit of zero or less means no limit.
func (f *Frontier) PopLevel(limit int) []Link {
	f.mu.Lock()
	defer f.mu.Unlock()

	var level []Link
	for f.queue.Len() > 0 {
		if limit > 0 && len(level) >= limit {
			break
		}
		next := (*f.queue)[0]
		if len(level) > 0 && next.Depth != level[0].Depth {
			break
		}
		q, _ := heap.Pop(f.queue).(queued)
		level = append(level, q.Link)
	}
	return level
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been queued before.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(url))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

type queued struct {
	Link
	seq int
}

// linkHeap is a min-heap on (depth, push order).
type linkHeap []queued

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	if h[i].Depth != h[j].Depth {
		return h[i].Depth < h[j].Depth
	}
	return h[i].seq < h[j].seq
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	q, _ := x.(queued)
	*h = append(*h, q)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
