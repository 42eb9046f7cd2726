package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of llmstxt.PageSource.
type PageSource struct {
	CrawlFn func(ctx context.Context, cfg llmstxt.CrawlConfig, fn llmstxt.PageFunc) error
}

func (s *PageSource) Crawl(ctx context.Context, cfg llmstxt.CrawlConfig, fn llmstxt.PageFunc) error {
	return s.CrawlFn(ctx, cfg, fn)
}

// Pages returns a PageSource that delivers pages in order and then
// returns err.
func Pages(err error, pages ...*llmstxt.PageResult) *PageSource {
	return &PageSource{
		CrawlFn: func(ctx context.Context, cfg llmstxt.CrawlConfig, fn llmstxt.PageFunc) error {
			for _, p := range pages {
				if err := fn(p); err != nil {
					return err
				}
			}
			return err
		},
	}
}
