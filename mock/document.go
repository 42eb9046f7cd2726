package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of llmstxt.DocumentStore.
type DocumentStore struct {
	SaveDocumentFn  func(ctx context.Context, doc *llmstxt.Document) error
	ListDocumentsFn func(ctx context.Context) ([]string, error)
}

func (s *DocumentStore) SaveDocument(ctx context.Context, doc *llmstxt.Document) error {
	return s.SaveDocumentFn(ctx, doc)
}

func (s *DocumentStore) ListDocuments(ctx context.Context) ([]string, error) {
	return s.ListDocumentsFn(ctx)
}

var _ llmstxt.Combiner = (*Combiner)(nil)

// Combiner is a mock implementation of llmstxt.Combiner.
type Combiner struct {
	CombineFn func(ctx context.Context) (*llmstxt.CombineResult, error)
}

func (c *Combiner) Combine(ctx context.Context) (*llmstxt.CombineResult, error) {
	return c.CombineFn(ctx)
}
