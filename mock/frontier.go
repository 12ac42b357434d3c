package mock

import (
	"context"

	"github.com/fwojciec/doxie"
)

var _ doxie.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of doxie.Frontier.
type Frontier struct {
	PushFn    func(url string) bool
	PopFn     func() (string, bool)
	LenFn     func() int
	SeenFn    func(url string) bool
	VisitedFn func() int
}

func (f *Frontier) Push(url string) bool {
	return f.PushFn(url)
}

func (f *Frontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(url string) bool {
	return f.SeenFn(url)
}

func (f *Frontier) Visited() int {
	return f.VisitedFn()
}

var _ doxie.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of doxie.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
