package mock

import "github.com/fwojciec/jobscout"

var _ jobscout.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of jobscout.Classifier.
type Classifier struct {
	LooksLikeJobFn func(url string) bool
}

func (c *Classifier) LooksLikeJob(url string) bool {
	return c.LooksLikeJobFn(url)
}
