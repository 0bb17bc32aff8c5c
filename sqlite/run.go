package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/wordcrawl/wordcrawl"
)

// Compile-time interface verification.
var _ wordcrawl.RunService = (*RunService)(nil)

// RunService implements wordcrawl.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// checksumEntries computes an xxHash fingerprint of a frequency table in
// its stored order and returns it as a hex string.
func checksumEntries(entries []wordcrawl.Entry) string {
	h := xxhash.New()
	var buf [8]byte
	for _, e := range entries {
		_, _ = h.WriteString(e.Word)
		binary.BigEndian.PutUint64(buf[:], uint64(e.Count))
		_, _ = h.Write(buf[:])
	}
	binary.BigEndian.PutUint64(buf[:], h.Sum64())
	return hex.EncodeToString(buf[:])
}

// CreateRun records a completed run together with its frequency table.
// The run's ID and Checksum fields are assigned here.
func (s *RunService) CreateRun(ctx context.Context, run *wordcrawl.Run, entries []wordcrawl.Entry) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.Checksum = checksumEntries(entries)
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seed, started_at, finished_at, pages, failed, words, checksum)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Seed, run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339),
		run.Pages, run.Failed, run.Words, run.Checksum)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_words (run_id, position, word, count) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, run.ID, i, e.Word, e.Count); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*wordcrawl.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seed, started_at, finished_at, pages, failed, words, checksum
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, wordcrawl.Errorf(wordcrawl.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves all recorded runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*wordcrawl.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed, started_at, finished_at, pages, failed, words, checksum
		FROM runs
		ORDER BY started_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*wordcrawl.Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunEntries retrieves a run's frequency table in its stored order.
func (s *RunService) RunEntries(ctx context.Context, id string) ([]wordcrawl.Entry, error) {
	if _, err := s.FindRunByID(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, count
		FROM run_words
		WHERE run_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []wordcrawl.Entry
	for rows.Next() {
		var e wordcrawl.Entry
		if err := rows.Scan(&e.Word, &e.Count); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// scanRun scans a runs row using the given scan function.
func scanRun(scan func(dest ...any) error) (*wordcrawl.Run, error) {
	var run wordcrawl.Run
	var startedAt, finishedAt string

	if err := scan(&run.ID, &run.Seed, &startedAt, &finishedAt,
		&run.Pages, &run.Failed, &run.Words, &run.Checksum); err != nil {
		return nil, err
	}

	var err error
	run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	run.FinishedAt, err = time.Parse(time.RFC3339, finishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse finished_at: %w", err)
	}
	return &run, nil
}
