package mock

import (
	"context"

	"github.com/fwojciec/jobscout"
)

var _ jobscout.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService is a mock implementation of jobscout.DiscoveryService.
type DiscoveryService struct {
	SaveDiscoveriesFn   func(ctx context.Context, seedURL string, urls []string) error
	FindDiscoveriesFn   func(ctx context.Context, filter jobscout.DiscoveryFilter) ([]*jobscout.Discovery, error)
	DeleteDiscoveriesFn func(ctx context.Context, seedURL string) error
}

func (s *DiscoveryService) SaveDiscoveries(ctx context.Context, seedURL string, urls []string) error {
	return s.SaveDiscoveriesFn(ctx, seedURL, urls)
}

func (s *DiscoveryService) FindDiscoveries(ctx context.Context, filter jobscout.DiscoveryFilter) ([]*jobscout.Discovery, error) {
	return s.FindDiscoveriesFn(ctx, filter)
}

func (s *DiscoveryService) DeleteDiscoveries(ctx context.Context, seedURL string) error {
	return s.DeleteDiscoveriesFn(ctx, seedURL)
}
