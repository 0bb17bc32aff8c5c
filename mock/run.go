package mock

import (
	"context"

	"github.com/wordcrawl/wordcrawl"
)

var _ wordcrawl.RunService = (*RunService)(nil)

// RunService is a mock implementation of wordcrawl.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *wordcrawl.Run, entries []wordcrawl.Entry) error
	FindRunByIDFn func(ctx context.Context, id string) (*wordcrawl.Run, error)
	FindRunsFn    func(ctx context.Context) ([]*wordcrawl.Run, error)
	RunEntriesFn  func(ctx context.Context, id string) ([]wordcrawl.Entry, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *wordcrawl.Run, entries []wordcrawl.Entry) error {
	return s.CreateRunFn(ctx, run, entries)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*wordcrawl.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*wordcrawl.Run, error) {
	return s.FindRunsFn(ctx)
}

func (s *RunService) RunEntries(ctx context.Context, id string) ([]wordcrawl.Entry, error) {
	return s.RunEntriesFn(ctx, id)
}
