package main

import (
	"context"
	"io"

	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/crawl"
	"github.com/wordcrawl/wordcrawl/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Runs   wordcrawl.RunService
	Driver *crawl.Driver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a site and write its word frequency table"`
	Refine  RefineCmd  `cmd:"" help:"Refine a frequency table with stopword, frequency, and stemming filters"`
	Top     TopCmd     `cmd:"" help:"Show the most frequent words of a table"`
	Sort    SortCmd    `cmd:"" help:"Sort the lines of a text file lexicographically"`
	History HistoryCmd `cmd:"" help:"List recorded crawl runs"`
	Export  ExportCmd  `cmd:"" help:"Export a recorded run's frequency table to a file"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Seeds   []string `arg:"" help:"Seed URLs. The first seed defines the crawl scope"`
	Output  string   `short:"o" default:"words.txt" help:"Output file for the frequency table"`
	Workers int      `short:"w" default:"1" help:"Concurrent fetch limit"`
	RPS     float64  `name:"rps" help:"Per-domain request rate limit (0 disables limiting)"`
	Text    bool     `short:"t" help:"Count words in rendered text instead of raw HTML"`
	Article bool     `short:"a" help:"Count words in the main article content only"`
	Record  bool     `short:"r" help:"Record the run in the history database"`
	Verbose bool     `short:"v" help:"Log each fetched page"`
}

// RefineCmd is the "refine" subcommand.
type RefineCmd struct {
	Input     string `arg:"" help:"Frequency table file to refine"`
	Output    string `short:"o" help:"Output file (defaults to overwriting the input)"`
	MinCount  int    `short:"m" default:"0" help:"Drop words with this count or lower"`
	Stopwords bool   `short:"s" help:"Drop common English stopwords"`
	Stem      bool   `help:"Merge words sharing a Snowball English stem"`
}

// TopCmd is the "top" subcommand.
type TopCmd struct {
	Input string `arg:"" help:"Frequency table file"`
	N     int    `short:"n" default:"10" help:"Number of words to show"`
}

// SortCmd is the "sort" subcommand.
type SortCmd struct {
	Input  string `arg:"" help:"File to sort"`
	Output string `arg:"" help:"Destination for the sorted lines"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID     string `arg:"" help:"Run ID (see 'wordcrawl history')"`
	Output string `short:"o" default:"words.txt" help:"Output file for the frequency table"`
}
