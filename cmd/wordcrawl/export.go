package main

import (
	"fmt"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	entries, err := deps.Runs.RunEntries(deps.Ctx, c.ID)
	if err != nil {
		if wordcrawl.ErrorCode(err) == wordcrawl.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wordcrawl history' to see recorded runs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		}
		return err
	}

	if err := fs.WriteTable(c.Output, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d words to %s\n", len(entries), c.Output)
	return nil
}
