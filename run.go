package wordcrawl

import (
	"context"
	"time"
)

// Run records a completed crawl: where it started, when, and what it
// accumulated.
type Run struct {
	ID         string    `json:"id"`
	Seed       string    `json:"seed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Pages      int       `json:"pages"`
	Failed     int       `json:"failed"`
	Words      int       `json:"words"`
	Checksum   string    `json:"checksum"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Seed == "" {
		return Errorf(EINVALID, "run seed required")
	}
	return nil
}

// RunService stores and retrieves crawl run history.
type RunService interface {
	// CreateRun records a completed run together with its frequency table.
	CreateRun(ctx context.Context, run *Run, entries []Entry) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves all recorded runs, most recent first.
	FindRuns(ctx context.Context) ([]*Run, error)

	// RunEntries retrieves a run's frequency table in its stored order.
	// Returns ENOTFOUND if the run does not exist.
	RunEntries(ctx context.Context, id string) ([]Entry, error)
}
