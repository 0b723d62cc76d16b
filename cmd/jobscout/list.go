package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/jobscout"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := jobscout.DiscoveryFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Seed != "" {
		filter.SeedURL = &c.Seed
	}

	discoveries, err := deps.Discoveries.FindDiscoveries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	if len(discoveries) == 0 {
		fmt.Fprintln(deps.Stdout, "No discoveries found. Use 'jobscout discover --save' to record some.")
		return nil
	}

	for _, d := range discoveries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", d.DiscoveredAt.Format(time.RFC3339), d.SeedURL, d.URL)
	}

	return nil
}
