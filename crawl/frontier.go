package crawl

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/fwojciec/doxie"
)

// Compile-time interface verification.
var _ doxie.Frontier = (*Frontier)(nil)

// bloomFalsePositiveRate is the acceptable false positive rate for URL
// deduplication. A false positive skips a page; it never fetches one twice.
const bloomFalsePositiveRate = 0.01

// Frontier is an in-memory FIFO crawl queue with Bloom filter
// deduplication and a hard bound on admitted URLs. It is safe for
// concurrent use by multiple goroutines.
type Frontier struct {
	mu         sync.Mutex
	seen       *bloom.BloomFilter
	queue      []string
	visited    int
	maxVisited int
}

// NewFrontier creates a Frontier that admits at most maxVisited URLs.
// The Bloom filter is sized for that bound.
func NewFrontier(maxVisited int) *Frontier {
	if maxVisited < 1 {
		maxVisited = 1
	}
	return &Frontier{
		seen:       bloom.NewWithEstimates(uint(maxVisited), bloomFalsePositiveRate),
		maxVisited: maxVisited,
	}
}

// Push adds a URL to the queue. Fragments are stripped before
// deduplication, so URLs differing only by fragment are duplicates.
// Returns false for duplicates and whenever the visited bound has been
// reached; the bound makes frontier memory independent of branching
// factor.
func (f *Frontier) Push(rawURL string) bool {
	url := stripFragment(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.visited >= f.maxVisited {
		return false
	}
	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.visited++
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the next URL in FIFO order.
// The bool result is false if the queue is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs awaiting fetch.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been admitted before.
// Fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(stripFragment(rawURL))
}

// Visited returns the number of URLs admitted so far.
func (f *Frontier) Visited() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
