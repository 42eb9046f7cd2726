package llmstxt

import (
	"context"
	"strings"
)

// SnapshotPrefix is prepended to a tag to name its snapshot directory.
const SnapshotPrefix = "v"

// Snapshot is an archived copy of the artifact and the stored documents.
type Snapshot struct {
	Tag   string
	Dir   string
	Files []string
}

// ValidateTag returns an error if tag cannot name a snapshot directory.
func ValidateTag(tag string) error {
	if tag == "" {
		return Errorf(EINVALID, "version tag required")
	}
	if strings.ContainsAny(tag, `/\`) || tag == "." || tag == ".." {
		return Errorf(EINVALID, "invalid version tag %q", tag)
	}
	return nil
}

// Archiver snapshots the current artifact and documents under a tag.
type Archiver interface {
	// Archive copies the artifact and all stored documents into the snapshot
	// for tag, replacing any earlier snapshot with the same tag.
	// Returns nil and no error when there is no artifact to archive.
	Archive(ctx context.Context, tag string) (*Snapshot, error)

	// ListSnapshots returns the tags of existing snapshots in sorted order.
	ListSnapshots(ctx context.Context) ([]string, error)
}

// VersionService reads and writes the version marker.
type VersionService interface {
	// CurrentVersion returns the recorded tag. The bool is false when no
	// tag has been recorded.
	CurrentVersion(ctx context.Context) (string, bool, error)

	// UpdateVersion records tag as the current version.
	UpdateVersion(ctx context.Context, tag string) error
}
