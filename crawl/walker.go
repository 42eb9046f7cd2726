// Package crawl walks documentation sites and runs the build pipeline that
// turns crawled pages into the combined knowledge base.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/llmstxt"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing and crawl defaults.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01

	// DefaultConcurrency is the number of pages fetched at the same time
	// when the configuration does not set one.
	DefaultConcurrency = 20
)

// Compile-time interface verification.
var _ llmstxt.PageSource = (*Walker)(nil)

// Walker crawls a site breadth first, one depth level at a time.
// Pages of a level are fetched concurrently and delivered to the callback
// in the order they were discovered.
//
// Fetcher, Converter and NewExtractor are required. Links is required to
// follow links past the seed. Detector, Sitemaps and RateLimiter are
// optional.
type Walker struct {
	Fetcher      llmstxt.Fetcher
	Links        llmstxt.LinkExtractor
	Converter    llmstxt.Converter
	NewExtractor func(opts llmstxt.ExtractOptions) llmstxt.Extractor

	// Detector picks the content selector from the seed page when the
	// configuration has none.
	Detector llmstxt.FrameworkDetector

	// Sitemaps seeds depth one when the configuration enables it.
	Sitemaps llmstxt.SitemapService

	RateLimiter llmstxt.DomainLimiter
}

// walk holds the state of one Crawl call.
type walk struct {
	*Walker
	cfg  llmstxt.CrawlConfig
	seed *url.URL

	once      sync.Once
	extractor llmstxt.Extractor
}

// walkResult is a processed page and the links found on it.
type walkResult struct {
	page  llmstxt.PageResult
	links []string
}

// Crawl walks the site starting at cfg.SeedURL and calls fn for every
// fetched page. Pages that could not be fetched or converted are delivered
// with Err set. Crawl returns an error only for an invalid configuration,
// a canceled context, or an error returned by fn.
func (w *Walker) Crawl(ctx context.Context, cfg llmstxt.CrawlConfig, fn llmstxt.PageFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	seed, err := parseSeed(cfg.SeedURL)
	if err != nil {
		return err
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	s := &walk{Walker: w, cfg: cfg, seed: seed}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seed.String(), 0)
	s.seedSitemap(ctx, frontier)

	fetched := 0
	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		limit := 0
		if cfg.MaxPages > 0 {
			limit = cfg.MaxPages - fetched
			if limit <= 0 {
				break
			}
		}
		level := frontier.PopLevel(limit)
		fetched += len(level)

		results := s.fetchLevel(ctx, level, concurrency)
		if err := ctx.Err(); err != nil {
			return err
		}

		for i := range results {
			res := &results[i]
			if err := fn(&res.page); err != nil {
				return err
			}
			for _, link := range res.links {
				if s.follow(link) {
					frontier.Push(link, res.page.Depth+1)
				}
			}
		}
	}

	return nil
}

// seedSitemap queues the sitemap URLs at depth one. A failed discovery
// leaves the crawl to link following.
func (s *walk) seedSitemap(ctx context.Context, frontier *Frontier) {
	if !s.cfg.UseSitemap || s.Sitemaps == nil || s.cfg.MaxDepth < 1 {
		return
	}
	urls, err := s.Sitemaps.DiscoverURLs(ctx, s.seed.String(), s.cfg.Filter)
	if err != nil {
		return
	}
	for _, u := range urls {
		if s.follow(u) {
			frontier.Push(u, 1)
		}
	}
}

// fetchLevel processes the links of one level with at most concurrency
// pages in flight. Results keep the order of level.
func (s *walk) fetchLevel(ctx context.Context, level []Link, concurrency int) []walkResult {
	results := make([]walkResult, len(level))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, link := range level {
		g.Go(func() error {
			results[i] = s.process(ctx, link)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// process fetches one page, collects its links and converts its main
// content to markdown.
func (s *walk) process(ctx context.Context, link Link) walkResult {
	res := walkResult{page: llmstxt.PageResult{URL: link.URL, Depth: link.Depth}}

	if s.RateLimiter != nil {
		host := s.seed.Host
		if u, err := url.Parse(link.URL); err == nil {
			host = u.Host
		}
		if err := s.RateLimiter.Wait(ctx, host); err != nil {
			res.page.Err = err
			return res
		}
	}

	html, err := s.Fetcher.Fetch(ctx, link.URL)
	if err != nil {
		res.page.Err = err
		return res
	}

	if s.Links != nil && link.Depth < s.cfg.MaxDepth {
		// A page whose links cannot be parsed is still converted.
		if links, err := s.Links.ExtractLinks(html, link.URL); err == nil {
			res.links = links
		}
	}

	extracted, err := s.extractorFor(html).Extract(html)
	if err != nil {
		res.page.Err = err
		return res
	}
	res.page.Title = extracted.Title

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		res.page.Err = err
		return res
	}
	if s.cfg.WordCountThreshold > 0 && len(strings.Fields(markdown)) < s.cfg.WordCountThreshold {
		markdown = ""
	}
	res.page.Markdown = markdown

	return res
}

// extractorFor returns the crawl's extractor, building it from the first
// fetched page. The seed is alone on its level, so the selector is
// detected on the seed whenever the seed could be fetched.
func (s *walk) extractorFor(html string) llmstxt.Extractor {
	s.once.Do(func() {
		opts := llmstxt.ExtractOptions{
			Selector:    s.cfg.TargetSelector,
			IgnoreLinks: s.cfg.IgnoreLinks,
		}
		if opts.Selector == "" && s.Detector != nil {
			opts.Selector = llmstxt.ContentSelector(s.Detector.Detect(html))
		}
		s.extractor = s.NewExtractor(opts)
	})
	return s.extractor
}

// follow reports whether a discovered link belongs to the crawl.
func (s *walk) follow(link string) bool {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	if !s.cfg.IncludeExternal && !strings.EqualFold(u.Host, s.seed.Host) {
		return false
	}
	return s.cfg.Filter.Match(link)
}

func parseSeed(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid seed URL %q: %v", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "seed URL %q must be an absolute http(s) URL", raw)
	}
	u.Fragment, u.RawFragment = "", ""
	return u, nil
}
