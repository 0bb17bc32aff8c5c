package main

import (
	"fmt"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/fs"
	"github.com/wordcrawl/wordcrawl/snowball"
)

// Run executes the refine command.
func (c *RefineCmd) Run(deps *Dependencies) error {
	table, err := fs.ReadTable(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	opts := snowball.Options{
		MinCount: c.MinCount,
		Stem:     c.Stem,
	}
	if c.Stopwords {
		opts.Stopwords = snowball.DefaultStopwords()
	}

	refined := snowball.Refine(table, opts)

	output := c.Output
	if output == "" {
		output = c.Input
	}
	if err := fs.WriteTable(output, refined.Entries()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Refined %d words to %d\n", table.Len(), refined.Len())
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", output)

	return nil
}
