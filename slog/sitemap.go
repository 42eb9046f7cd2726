package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs the URLs a sitemap contributes to the crawl.
type LoggingSitemapService struct {
	next   llmstxt.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next llmstxt.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service. A failure is logged as a
// warning since the walker falls back to following links.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *llmstxt.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"seed", baseURL,
			"include", patternCount(filter, true),
			"exclude", patternCount(filter, false),
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.Warn("sitemap unavailable, following links only", append(attrs, "err", err)...)
			return
		}
		s.logger.Info("sitemap seeded crawl", append(attrs, "urls", len(urls))...)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}

func patternCount(f *llmstxt.URLFilter, include bool) int {
	switch {
	case f == nil:
		return 0
	case include:
		return len(f.Include)
	default:
		return len(f.Exclude)
	}
}
