package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/llmstxt"
)

// Ensure Archiver implements llmstxt.Archiver at compile time.
var _ llmstxt.Archiver = (*Archiver)(nil)

// Archiver copies the artifact and working documents into versions/v<tag>.
type Archiver struct {
	paths llmstxt.Paths
}

// NewArchiver creates an Archiver for the output layout rooted at paths.
func NewArchiver(paths llmstxt.Paths) *Archiver {
	return &Archiver{paths: paths}
}

// Archive snapshots the current state under tag. Any earlier snapshot with
// the same tag is removed first. Returns nil and no error when there is no
// artifact; nothing is created in that case.
func (a *Archiver) Archive(ctx context.Context, tag string) (*llmstxt.Snapshot, error) {
	if err := llmstxt.ValidateTag(tag); err != nil {
		return nil, err
	}

	artifact := a.paths.Artifact()
	if _, err := os.Stat(artifact); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	slugs, err := listSlugs(a.paths.Latest())
	if err != nil {
		return nil, err
	}
	slices.Sort(slugs)

	dir := a.paths.Snapshot(tag)
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("removing previous snapshot: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	snap := &llmstxt.Snapshot{Tag: tag, Dir: dir}

	if err := copyFile(artifact, filepath.Join(dir, llmstxt.ArtifactName)); err != nil {
		return nil, fmt.Errorf("copying artifact: %w", err)
	}
	snap.Files = append(snap.Files, llmstxt.ArtifactName)

	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := slug + llmstxt.DocumentExt
		if err := copyFile(filepath.Join(a.paths.Latest(), name), filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("copying %s: %w", name, err)
		}
		snap.Files = append(snap.Files, name)
	}

	return snap, nil
}

// ListSnapshots returns the tags of existing snapshots in sorted order.
func (a *Archiver) ListSnapshots(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(a.paths.Versions())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), llmstxt.SnapshotPrefix) {
			continue
		}
		if tag := strings.TrimPrefix(e.Name(), llmstxt.SnapshotPrefix); tag != "" {
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags, nil
}
