package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/jobscout"
)

// Run executes the boards command.
func (c *BoardsCmd) Run(deps *Dependencies) error {
	boards := jobscout.DefaultRuleSet().JobBoards
	sort.Strings(boards)
	for _, b := range boards {
		fmt.Fprintln(deps.Stdout, b)
	}
	return nil
}
