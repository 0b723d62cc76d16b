package mock

import "github.com/fwojciec/jobscout"

var _ jobscout.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of jobscout.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(content, baseURL string) ([]string, error)
	NameFn         func() string
}

func (e *LinkExtractor) ExtractLinks(content, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(content, baseURL)
}

func (e *LinkExtractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}
