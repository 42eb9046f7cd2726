package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of llmstxt.Archiver.
type Archiver struct {
	ArchiveFn       func(ctx context.Context, tag string) (*llmstxt.Snapshot, error)
	ListSnapshotsFn func(ctx context.Context) ([]string, error)
}

func (a *Archiver) Archive(ctx context.Context, tag string) (*llmstxt.Snapshot, error) {
	return a.ArchiveFn(ctx, tag)
}

func (a *Archiver) ListSnapshots(ctx context.Context) ([]string, error) {
	return a.ListSnapshotsFn(ctx)
}

var _ llmstxt.VersionService = (*VersionService)(nil)

// VersionService is a mock implementation of llmstxt.VersionService.
type VersionService struct {
	CurrentVersionFn func(ctx context.Context) (string, bool, error)
	UpdateVersionFn  func(ctx context.Context, tag string) error
}

func (s *VersionService) CurrentVersion(ctx context.Context) (string, bool, error) {
	return s.CurrentVersionFn(ctx)
}

func (s *VersionService) UpdateVersion(ctx context.Context, tag string) error {
	return s.UpdateVersionFn(ctx, tag)
}
