package main

import (
	"fmt"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/fs"
)

// Run executes the sort command.
func (c *SortCmd) Run(deps *Dependencies) error {
	if err := fs.SortLines(c.Input, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Output)
	return nil
}
