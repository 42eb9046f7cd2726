package llmstxt

import "context"

// Publisher copies a snapshot to remote storage.
type Publisher interface {
	// Publish uploads every file of the snapshot and the artifact
	// at artifactPath. Returns the number of uploaded objects.
	Publish(ctx context.Context, snap *Snapshot, artifactPath string) (int, error)
}
