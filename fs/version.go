package fs

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/llmstxt"
)

// Ensure VersionFile implements llmstxt.VersionService at compile time.
var _ llmstxt.VersionService = (*VersionFile)(nil)

// VersionFile stores the current version tag as a single line of text.
type VersionFile struct {
	path string
}

// NewVersionFile creates a VersionFile backed by the file at path.
func NewVersionFile(path string) *VersionFile {
	return &VersionFile{path: path}
}

// CurrentVersion returns the recorded tag. A missing or blank file means
// no version has been recorded.
func (f *VersionFile) CurrentVersion(ctx context.Context) (string, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	tag := strings.TrimSpace(string(data))
	if tag == "" {
		return "", false, nil
	}
	return tag, true, nil
}

// UpdateVersion records tag, overwriting the previous value.
func (f *VersionFile) UpdateVersion(ctx context.Context, tag string) error {
	if err := llmstxt.ValidateTag(tag); err != nil {
		return err
	}
	return writeFile(f.path, []byte(tag+"\n"))
}
