package llmstxt

import "context"

// PageResult is a crawled page as delivered by a PageSource.
// Markdown is empty when the page produced no usable text.
type PageResult struct {
	URL      string
	Title    string
	Markdown string
	Depth    int

	// Err is set when the page could not be fetched or converted.
	Err error
}

// PageFunc receives crawled pages one at a time.
// Returning an error stops the crawl.
type PageFunc func(page *PageResult) error

// CrawlConfig controls how a documentation site is traversed.
type CrawlConfig struct {
	// SeedURL is the first page fetched.
	SeedURL string

	// MaxDepth is the number of link hops followed from the seed.
	MaxDepth int

	// Filter is the URL pattern chain candidate links must pass.
	// The seed is always crawled.
	Filter *URLFilter

	// IncludeExternal allows following links to other hosts.
	IncludeExternal bool

	// WordCountThreshold is the minimum number of words of extracted text;
	// pages below it are delivered without markdown.
	WordCountThreshold int

	// TargetSelector is the CSS selector of the main content element.
	// Empty means the selector is chosen from the detected framework.
	TargetSelector string

	// Concurrency is the number of pages fetched at the same time.
	Concurrency int

	// MaxPages caps the number of fetched pages. Zero means no cap.
	MaxPages int

	// UseSitemap seeds the crawl with the site's sitemap URLs.
	UseSitemap bool

	// IgnoreLinks renders links as plain text in the markdown output.
	IgnoreLinks bool
}

// Validate returns an error if the configuration cannot be crawled.
func (c *CrawlConfig) Validate() error {
	if c.SeedURL == "" {
		return Errorf(EINVALID, "seed URL required")
	}
	if c.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must not be negative")
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	return nil
}

// PageSource crawls a documentation site and delivers its pages as markdown.
// Implementations hide fetching, link discovery, content extraction and
// markdown conversion. fn is called from a single goroutine, one page at a time.
type PageSource interface {
	Crawl(ctx context.Context, cfg CrawlConfig, fn PageFunc) error
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	ContentHTML string
}

// ExtractOptions tunes content extraction for one crawl.
type ExtractOptions struct {
	// Selector is the CSS selector of the main content element.
	Selector string

	// IgnoreLinks replaces hyperlinks with their text.
	IgnoreLinks bool
}

// Extractor extracts the main content from an HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into Markdown.
	Convert(html string) (string, error)
}

// LinkExtractor lists the hyperlinks of an HTML page as absolute URLs.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap, keeping those
	// that pass filter. A nil filter keeps everything.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
