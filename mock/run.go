package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.RunService = (*RunService)(nil)

// RunService is a mock implementation of llmstxt.RunService.
type RunService struct {
	CreateRunFn      func(ctx context.Context, run *llmstxt.Run) error
	RecordPageFn     func(ctx context.Context, runID string, outcome *llmstxt.PageOutcome) error
	FinishRunFn      func(ctx context.Context, run *llmstxt.Run) error
	FindRunsFn       func(ctx context.Context, filter llmstxt.RunFilter) ([]*llmstxt.Run, error)
	PreviousHashesFn func(ctx context.Context, excludeRunID string) (map[string]string, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *llmstxt.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) RecordPage(ctx context.Context, runID string, outcome *llmstxt.PageOutcome) error {
	return s.RecordPageFn(ctx, runID, outcome)
}

func (s *RunService) FinishRun(ctx context.Context, run *llmstxt.Run) error {
	return s.FinishRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter llmstxt.RunFilter) ([]*llmstxt.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) PreviousHashes(ctx context.Context, excludeRunID string) (map[string]string, error) {
	return s.PreviousHashesFn(ctx, excludeRunID)
}
