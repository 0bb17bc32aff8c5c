package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/wordcrawl/wordcrawl/crawl"
	"github.com/wordcrawl/wordcrawl/goquery"
	"github.com/wordcrawl/wordcrawl/htmltext"
	wchttp "github.com/wordcrawl/wordcrawl/http"
	"github.com/wordcrawl/wordcrawl/readability"
	wcslog "github.com/wordcrawl/wordcrawl/slog"
	"github.com/wordcrawl/wordcrawl/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the run history store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordcrawl"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wordcrawl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Only commands that touch run history need the database.
	if cmd == "history" || cmd == "export" || (cmd == "crawl" && cli.Crawl.Record) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WORDCRAWL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.DB = m.DB
		deps.Runs = sqlite.NewRunService(m.DB)
	}

	if cmd == "crawl" {
		level := slog.LevelWarn
		if cli.Crawl.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		fetcher := wchttp.NewFetcher()
		defer fetcher.Close()

		links := goquery.NewExtractor()

		driver := &crawl.Driver{
			Fetcher: wcslog.NewLoggingFetcher(fetcher, logger),
			Links:   wcslog.NewLoggingLinkExtractor(links, logger),
			Logger:  logger,
			Workers: cli.Crawl.Workers,
		}
		switch {
		case cli.Crawl.Article:
			driver.Text = readability.NewExtractor()
		case cli.Crawl.Text:
			driver.Text = htmltext.NewExtractor()
		}
		if cli.Crawl.RPS > 0 {
			driver.Limiter = crawl.NewDomainLimiter(cli.Crawl.RPS)
		}
		deps.Driver = driver
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WORDCRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wordcrawl.db"
	}
	dir := filepath.Join(home, ".wordcrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wordcrawl.db")
}
