package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordcrawl/wordcrawl"
	"github.com/wordcrawl/wordcrawl/sqlite"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()

	run := &wordcrawl.Run{
		Seed:      "https://example.com",
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Pages:     3,
		Failed:    1,
		Words:     5,
	}
	entries := []wordcrawl.Entry{
		{Word: "the", Count: 2},
		{Word: "cat", Count: 1},
	}

	require.NoError(t, svc.CreateRun(ctx, run, entries))
	assert.NotEmpty(t, run.ID)
	assert.NotEmpty(t, run.Checksum)
	assert.False(t, run.FinishedAt.IsZero())

	got, err := svc.FindRunByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Seed, got.Seed)
	assert.Equal(t, run.Pages, got.Pages)
	assert.Equal(t, run.Failed, got.Failed)
	assert.Equal(t, run.Words, got.Words)
	assert.Equal(t, run.Checksum, got.Checksum)
	assert.True(t, run.StartedAt.Equal(got.StartedAt))
}

func TestRunService_CreateRun_requiresSeed(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	svc := sqlite.NewRunService(db)

	err := svc.CreateRun(context.Background(), &wordcrawl.Run{}, nil)
	require.Error(t, err)
	assert.Equal(t, wordcrawl.EINVALID, wordcrawl.ErrorCode(err))
}

func TestRunService_CreateRun_checksumTracksEntries(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()
	started := time.Now().UTC()

	a := &wordcrawl.Run{Seed: "https://example.com", StartedAt: started}
	b := &wordcrawl.Run{Seed: "https://example.com", StartedAt: started}
	c := &wordcrawl.Run{Seed: "https://example.com", StartedAt: started}

	require.NoError(t, svc.CreateRun(ctx, a, []wordcrawl.Entry{{Word: "cat", Count: 1}}))
	require.NoError(t, svc.CreateRun(ctx, b, []wordcrawl.Entry{{Word: "cat", Count: 1}}))
	require.NoError(t, svc.CreateRun(ctx, c, []wordcrawl.Entry{{Word: "cat", Count: 2}}))

	assert.Equal(t, a.Checksum, b.Checksum)
	assert.NotEqual(t, a.Checksum, c.Checksum)
}

func TestRunService_FindRunByID_notFound(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	svc := sqlite.NewRunService(db)

	_, err := svc.FindRunByID(context.Background(), "no-such-run")
	require.Error(t, err)
	assert.Equal(t, wordcrawl.ENOTFOUND, wordcrawl.ErrorCode(err))
}

func TestRunService_FindRuns_mostRecentFirst(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()

	older := &wordcrawl.Run{
		Seed:      "https://old.example.com",
		StartedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &wordcrawl.Run{
		Seed:      "https://new.example.com",
		StartedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.CreateRun(ctx, older, nil))
	require.NoError(t, svc.CreateRun(ctx, newer, nil))

	runs, err := svc.FindRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)
}

func TestRunService_RunEntries(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	svc := sqlite.NewRunService(db)
	ctx := context.Background()

	run := &wordcrawl.Run{Seed: "https://example.com", StartedAt: time.Now().UTC()}
	entries := []wordcrawl.Entry{
		{Word: "the", Count: 3},
		{Word: "cat", Count: 2},
		{Word: "sat", Count: 2},
	}
	require.NoError(t, svc.CreateRun(ctx, run, entries))

	got, err := svc.RunEntries(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, entries, got, "entries come back in stored order")
}

func TestRunService_RunEntries_unknownRun(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	svc := sqlite.NewRunService(db)

	_, err := svc.RunEntries(context.Background(), "no-such-run")
	require.Error(t, err)
	assert.Equal(t, wordcrawl.ENOTFOUND, wordcrawl.ErrorCode(err))
}
