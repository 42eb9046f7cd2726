package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of llmstxt.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *llmstxt.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *llmstxt.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
