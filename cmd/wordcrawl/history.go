package main

import (
	"fmt"

	"github.com/wordcrawl/wordcrawl"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordcrawl.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'wordcrawl crawl --record' to record one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  pages=%d failed=%d words=%d\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Pages, r.Failed, r.Words)
	}

	return nil
}
