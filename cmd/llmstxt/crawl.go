package main

import (
	"fmt"

	"github.com/fwojciec/llmstxt"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg, err := c.crawlConfig()
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawling %s (depth %d)...\n", cfg.SeedURL, cfg.MaxDepth)

	report, err := deps.Pipeline.Run(deps.Ctx, cfg, c.Tag)
	printReport(deps.Stdout, deps.Paths, report)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	return nil
}

func (c *CrawlCmd) crawlConfig() (llmstxt.CrawlConfig, error) {
	filter, err := llmstxt.ParseURLFilter(c.Include, c.Exclude)
	if err != nil {
		return llmstxt.CrawlConfig{}, err
	}

	return llmstxt.CrawlConfig{
		SeedURL:            c.Seed,
		MaxDepth:           c.Depth,
		Filter:             filter,
		IncludeExternal:    c.IncludeExternal,
		WordCountThreshold: c.WordThreshold,
		TargetSelector:     c.Selector,
		Concurrency:        c.Concurrency,
		MaxPages:           c.MaxPages,
		UseSitemap:         c.Sitemap,
		IgnoreLinks:        !c.KeepLinks,
	}, nil
}
