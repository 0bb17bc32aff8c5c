package main

import (
	"fmt"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/fs"
)

// Run executes the top command.
func (c *TopCmd) Run(deps *Dependencies) error {
	table, err := fs.ReadTable(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	entries := table.Entries()
	if c.N > 0 && len(entries) > c.N {
		entries = entries[:c.N]
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%6d  %s\n", e.Count, e.Word)
	}

	return nil
}
