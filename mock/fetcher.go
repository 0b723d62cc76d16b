package mock

import (
	"context"

	"github.com/fwojciec/jobscout"
)

var _ jobscout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobscout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*jobscout.Content, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*jobscout.Content, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
