package llmstxt

import (
	"context"
	"strings"
)

// DocumentExt is the file extension of stored documents.
const DocumentExt = ".md"

// Document is an accepted page stored under its slug.
type Document struct {
	Slug    string `json:"slug"`
	Content string `json:"content"`
}

// Validate returns an error if the document cannot be stored.
func (d *Document) Validate() error {
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	if strings.ContainsAny(d.Slug, `/\`) {
		return Errorf(EINVALID, "document slug %q must not contain path separators", d.Slug)
	}
	return nil
}

// DocumentStore persists documents, one per slug.
type DocumentStore interface {
	// SaveDocument writes the document, replacing any document with the same slug.
	SaveDocument(ctx context.Context, doc *Document) error

	// ListDocuments returns the slugs of all stored documents.
	ListDocuments(ctx context.Context) ([]string, error)
}

// DocumentIssue records a stored document that could not be used.
type DocumentIssue struct {
	Slug string
	Err  error
}

// CombineResult is the outcome of combining stored documents into the artifact.
type CombineResult struct {
	// Path is the artifact location. Set only when the artifact was written.
	Path string

	// Slugs lists the combined documents in artifact order.
	Slugs []string

	// Excluded lists changelog documents left out of the artifact.
	Excluded []string

	// Empty lists documents with no content after trimming.
	Empty []string

	// Issues lists documents that could not be read.
	Issues []DocumentIssue

	// Bytes is the size of the written artifact.
	Bytes int
}

// Written reports whether an artifact was produced.
func (r *CombineResult) Written() bool {
	return r != nil && len(r.Slugs) > 0
}

// Combiner concatenates all stored documents into a single artifact.
type Combiner interface {
	// Combine regenerates the artifact from the stored documents.
	// When no document survives, no artifact is written and the result
	// has no slugs; this is not an error.
	Combine(ctx context.Context) (*CombineResult, error)
}
