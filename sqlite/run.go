package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/llmstxt"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ llmstxt.RunService = (*RunService)(nil)

// RunService implements llmstxt.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun starts a new run.
func (s *RunService) CreateRun(ctx context.Context, run *llmstxt.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.Status = llmstxt.RunStatusRunning
	run.StartedAt = time.Now().UTC().Truncate(time.Second)
	run.FinishedAt = time.Time{}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, seed_url, tag, status, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.SeedURL, run.Tag, string(run.Status), formatTime(run.StartedAt))

	return err
}

// RecordPage stores the outcome of one page.
func (s *RunService) RecordPage(ctx context.Context, runID string, outcome *llmstxt.PageOutcome) error {
	if err := s.ensureRun(ctx, runID); err != nil {
		return err
	}

	var errText string
	if outcome.Err != nil {
		errText = outcome.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_pages (run_id, url, slug, status, reason, error, content_hash, bytes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, outcome.URL, outcome.Slug, string(outcome.Status), string(outcome.Reason),
		errText, outcome.Hash, outcome.Bytes)

	return err
}

// FinishRun stores the final counters of a run. A run still marked as
// running is marked finished.
func (s *RunService) FinishRun(ctx context.Context, run *llmstxt.Run) error {
	if run.Status == "" || run.Status == llmstxt.RunStatusRunning {
		run.Status = llmstxt.RunStatusFinished
	}
	run.FinishedAt = time.Now().UTC().Truncate(time.Second)

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET tag = ?, status = ?, saved = ?, skipped = ?, failed = ?, documents = ?, bytes = ?, finished_at = ?
		WHERE id = ?
	`, run.Tag, string(run.Status), run.Saved, run.Skipped, run.Failed, run.Documents, run.Bytes,
		formatTime(run.FinishedAt), run.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return llmstxt.Errorf(llmstxt.ENOTFOUND, "run not found")
	}
	return nil
}

// FindRuns returns runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter llmstxt.RunFilter) ([]*llmstxt.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, seed_url, tag, status, saved, skipped, failed, documents, bytes, started_at, finished_at
		FROM runs WHERE 1=1`)

	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	query.WriteString(" ORDER BY rowid DESC")
	appendLimit(&query, &args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*llmstxt.Run
	for rows.Next() {
		var run llmstxt.Run
		var status, startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.SeedURL, &run.Tag, &status, &run.Saved, &run.Skipped,
			&run.Failed, &run.Documents, &run.Bytes, &startedAt, &finishedAt); err != nil {
			return nil, err
		}
		run.Status = llmstxt.RunStatus(status)

		if run.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseTime(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// PreviousHashes returns the content hash per slug of the pages saved by
// the most recent finished run other than excludeRunID. Returns an empty
// map when there is no such run.
func (s *RunService) PreviousHashes(ctx context.Context, excludeRunID string) (map[string]string, error) {
	hashes := make(map[string]string)

	var runID string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM runs
		WHERE status = ? AND id != ?
		ORDER BY rowid DESC
		LIMIT 1
	`, string(llmstxt.RunStatusFinished), excludeRunID).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return hashes, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, content_hash FROM run_pages
		WHERE run_id = ? AND status = ?
	`, runID, string(llmstxt.OutcomeSaved))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var slug, hash string
		if err := rows.Scan(&slug, &hash); err != nil {
			return nil, err
		}
		hashes[slug] = hash
	}

	return hashes, rows.Err()
}

func (s *RunService) ensureRun(ctx context.Context, id string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM runs WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return llmstxt.Errorf(llmstxt.ENOTFOUND, "run not found")
	}
	return err
}
