package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/llmstxt"
)

// Ensure DocumentStore implements llmstxt.DocumentStore at compile time.
var _ llmstxt.DocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps one markdown file per slug in a flat directory.
type DocumentStore struct {
	dir string
}

// NewDocumentStore creates a DocumentStore writing to dir.
// The directory is created on first save.
func NewDocumentStore(dir string) *DocumentStore {
	return &DocumentStore{dir: dir}
}

// Dir returns the directory holding the documents.
func (s *DocumentStore) Dir() string {
	return s.dir
}

// SaveDocument writes the document to <dir>/<slug>.md, replacing any
// previous document with the same slug.
func (s *DocumentStore) SaveDocument(ctx context.Context, doc *llmstxt.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return writeFile(documentPath(s.dir, doc.Slug), []byte(doc.Content))
}

// ListDocuments returns the slugs of stored documents in directory order.
// A missing directory holds no documents.
func (s *DocumentStore) ListDocuments(ctx context.Context) ([]string, error) {
	return listSlugs(s.dir)
}

func documentPath(dir, slug string) string {
	return filepath.Join(dir, slug+llmstxt.DocumentExt)
}

// listSlugs returns the slugs of the regular .md files in dir.
func listSlugs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var slugs []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, llmstxt.DocumentExt) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, llmstxt.DocumentExt))
	}
	return slugs, nil
}
