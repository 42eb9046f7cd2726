package llmstxt

import (
	"context"
	"time"
)

// RunStatus is the state of a recorded run.
type RunStatus string

// RunStatus constants.
const (
	RunStatusRunning  RunStatus = "running"
	RunStatusFinished RunStatus = "finished"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one recorded build run.
type Run struct {
	ID         string    `json:"id"`
	SeedURL    string    `json:"seedUrl"`
	Tag        string    `json:"tag"`
	Status     RunStatus `json:"status"`
	Saved      int       `json:"saved"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	Documents  int       `json:"documents"`
	Bytes      int       `json:"bytes"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SeedURL == "" {
		return Errorf(EINVALID, "run seed URL required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Status *RunStatus `json:"status"`
	Limit  int        `json:"limit"`
}

// RunService records build runs and their page outcomes.
type RunService interface {
	// CreateRun starts a new run. The ID, status and start time are set.
	CreateRun(ctx context.Context, run *Run) error

	// RecordPage stores the outcome of one page for a run.
	// Returns ENOTFOUND if the run does not exist.
	RecordPage(ctx context.Context, runID string, outcome *PageOutcome) error

	// FinishRun stores the final counters and status of a run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *Run) error

	// FindRuns returns runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// PreviousHashes returns the content hash per slug of saved pages from
	// the most recent finished run other than excludeRunID.
	PreviousHashes(ctx context.Context, excludeRunID string) (map[string]string, error)
}
