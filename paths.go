package llmstxt

import "path/filepath"

// Output layout names, relative to the output root.
const (
	LatestDirName   = "latest"
	ArtifactName    = "llms.txt"
	VersionsDirName = "versions"
	VersionFileName = "LAST_VERSION"
	LedgerName      = ".llmstxt.db"
)

// Paths locates the files produced under an output root.
type Paths struct {
	Root string
}

// Latest returns the working directory holding one document per page.
func (p Paths) Latest() string { return filepath.Join(p.Root, LatestDirName) }

// Artifact returns the combined knowledge-base file.
func (p Paths) Artifact() string { return filepath.Join(p.Root, ArtifactName) }

// Versions returns the directory holding snapshots.
func (p Paths) Versions() string { return filepath.Join(p.Root, VersionsDirName) }

// Snapshot returns the snapshot directory for tag.
func (p Paths) Snapshot(tag string) string {
	return filepath.Join(p.Versions(), SnapshotPrefix+tag)
}

// VersionFile returns the version marker file.
func (p Paths) VersionFile() string { return filepath.Join(p.Root, VersionFileName) }

// Ledger returns the run ledger database.
func (p Paths) Ledger() string { return filepath.Join(p.Root, LedgerName) }
