package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Paths    llmstxt.Paths
	Store    llmstxt.DocumentStore
	Combiner llmstxt.Combiner
	Archiver llmstxt.Archiver
	Versions llmstxt.VersionService
	Runs     llmstxt.RunService
	Pipeline *crawl.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string          `short:"d" default:"." env:"LLMSTXT_DIR" help:"Output directory"`
	Config  kong.ConfigFlag `short:"C" help:"YAML file with flag values (default: ./llmstxt.yaml if present)"`
	Verbose bool            `short:"v" env:"LLMSTXT_VERBOSE" help:"Log every fetch and stored document"`

	Crawl    CrawlCmd    `cmd:"" help:"Crawl the site, store pages and build llms.txt"`
	Combine  CombineCmd  `cmd:"" help:"Rebuild llms.txt from the stored pages"`
	Archive  ArchiveCmd  `cmd:"" help:"Snapshot llms.txt and the stored pages under a version tag"`
	Version  VersionCmd  `cmd:"" help:"Show or set the current version"`
	Versions VersionsCmd `cmd:"" help:"List archived versions"`
	History  HistoryCmd  `cmd:"" help:"List recorded crawl runs"`
	Status   StatusCmd   `cmd:"" help:"Show the state of the output directory"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Tag string `short:"t" help:"Archive the result under this version tag and record it as current"`

	Seed            string        `default:"https://docs.llamaindex.ai/en/latest/" env:"LLMSTXT_SEED" help:"First page to crawl"`
	Include         []string      `default:"*docs.llamaindex.ai*" help:"URL patterns links must match, * and ? wildcards (repeatable)"`
	Exclude         []string      `default:"*docs.llamaindex.ai/en/stable/*,*wiki*,*cloud*,*.js,*.css,*.png,*.jpg,*.gif" help:"URL patterns links must not match (repeatable)"`
	Depth           int           `default:"4" help:"Link hops followed from the seed"`
	Selector        string        `default:"article.md-content__inner.md-typeset" help:"CSS selector of the main content; empty detects the site framework"`
	WordThreshold   int           `default:"20" help:"Minimum number of words for a page to be kept"`
	Concurrency     int           `short:"c" default:"20" help:"Pages fetched at the same time"`
	MaxPages        int           `help:"Stop after fetching this many pages (0 = no limit)"`
	Sitemap         bool          `help:"Seed the crawl with the site's sitemap"`
	IncludeExternal bool          `help:"Follow links to other hosts"`
	KeepLinks       bool          `help:"Keep hyperlinks in the markdown"`
	Browser         bool          `help:"Render pages with headless Chrome"`
	RPS             float64       `name:"rps" default:"5" help:"Requests per second per host"`
	Timeout         time.Duration `default:"10s" help:"Fetch timeout per page"`
	NoTokens        bool          `help:"Skip the token estimate"`

	Publish PublishFlags `embed:"" prefix:"publish-"`
}

// PublishFlags configure uploading archived versions to S3.
type PublishFlags struct {
	Bucket    string `env:"LLMSTXT_PUBLISH_BUCKET" help:"Upload archived versions to this S3 bucket"`
	Prefix    string `env:"LLMSTXT_PUBLISH_PREFIX" help:"Key prefix inside the bucket"`
	Region    string `env:"AWS_REGION" help:"AWS region"`
	Profile   string `env:"AWS_PROFILE" help:"AWS shared config profile"`
	Endpoint  string `env:"LLMSTXT_PUBLISH_ENDPOINT" help:"Endpoint of an S3-compatible service"`
	PathStyle bool   `help:"Use path-style bucket addressing"`
}

// CombineCmd is the "combine" subcommand.
type CombineCmd struct{}

// ArchiveCmd is the "archive" subcommand.
type ArchiveCmd struct {
	Tag           string `arg:"" help:"Version tag"`
	UpdateVersion bool   `short:"u" help:"Also record the tag as the current version"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct {
	Show VersionShowCmd `cmd:"" default:"1" help:"Print the current version"`
	Set  VersionSetCmd  `cmd:"" help:"Record a version tag as current"`
}

// VersionShowCmd is the "version show" subcommand.
type VersionShowCmd struct{}

// VersionSetCmd is the "version set" subcommand.
type VersionSetCmd struct {
	Tag string `arg:"" help:"Version tag"`
}

// VersionsCmd is the "versions" subcommand.
type VersionsCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Number of runs to show (0 = all)"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
