package doxie

import "context"

// Fetcher retrieves HTML pages over the network.
type Fetcher interface {
	// Fetch returns the page body for the URL. Only successful responses
	// carrying HTML are accepted; anything else (non-200 status, wrong
	// content type, transport failure, timeout) is an error the caller
	// treats as a dead end.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	Close() error
}
