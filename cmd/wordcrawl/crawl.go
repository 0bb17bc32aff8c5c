package main

import (
	"fmt"
	"time"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	started := time.Now().UTC()

	result, err := deps.Driver.Run(deps.Ctx, c.Seeds)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	entries := result.Table.Entries()
	if err := fs.WriteTable(c.Output, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d failed), %d distinct words\n",
		result.Pages, result.Failed, result.Table.Len())
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Output)

	if c.Record {
		run := &wordcrawl.Run{
			Seed:       c.Seeds[0],
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
			Pages:      result.Pages,
			Failed:     result.Failed,
			Words:      result.Table.Len(),
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run, entries); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Recorded run %s\n", run.ID)
	}

	return nil
}
