package main

import (
	"fmt"

	"github.com/fwojciec/jobscout"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Discoveries.DeleteDiscoveries(deps.Ctx, c.Seed); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted discoveries for %s\n", c.Seed)
	return nil
}
