package doxie

import "context"

// Frontier manages a crawl queue with deduplication and a hard bound on
// growth. It is scoped to a single crawl invocation.
type Frontier interface {
	// Push adds a URL to the queue. Returns false if the URL has already
	// been seen or the visited bound has been reached.
	Push(url string) bool

	// Pop returns the next URL in FIFO order.
	// Returns false if the queue is empty.
	Pop() (string, bool)

	// Len returns the number of URLs awaiting fetch.
	Len() int

	// Seen returns true if the URL has been admitted before.
	Seen(url string) bool

	// Visited returns the number of URLs admitted so far. It grows
	// monotonically and never exceeds the frontier's configured bound.
	Visited() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
