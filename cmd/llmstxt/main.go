package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/crawl"
	"github.com/fwojciec/llmstxt/fs"
	"github.com/fwojciec/llmstxt/gemini"
	"github.com/fwojciec/llmstxt/goquery"
	"github.com/fwojciec/llmstxt/htmltomarkdown"
	llmshttp "github.com/fwojciec/llmstxt/http"
	"github.com/fwojciec/llmstxt/readability"
	"github.com/fwojciec/llmstxt/rod"
	"github.com/fwojciec/llmstxt/s3"
	llmslog "github.com/fwojciec/llmstxt/slog"
	"github.com/fwojciec/llmstxt/sqlite"
	"github.com/fwojciec/llmstxt/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite run ledger, opened for commands that need it.
	DB *sqlite.DB

	// Overrides for end-to-end testing. When nil, the crawl command builds
	// a Walker and, with --publish-bucket, an S3 publisher.
	Source    llmstxt.PageSource
	Publisher llmstxt.Publisher

	closers []io.Closer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases the ledger and any fetcher started by Run.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil

	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.DB = nil
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmstxt"),
		kong.Description("Build a single llms.txt knowledge base from a documentation site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(yamlLoader, DefaultConfigFile),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmstxt --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	paths := llmstxt.Paths{Root: cli.Dir}
	deps.Logger = logger
	deps.Paths = paths
	deps.Store = llmslog.NewLoggingDocumentStore(fs.NewDocumentStore(paths.Latest()), logger)
	deps.Combiner = llmslog.NewLoggingCombiner(fs.NewCombiner(paths.Latest(), paths.Artifact()), logger)
	deps.Archiver = llmslog.NewLoggingArchiver(fs.NewArchiver(paths), logger)
	deps.Versions = fs.NewVersionFile(paths.VersionFile())

	defer m.Close()

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "crawl" || cmd == "history" {
		if err := os.MkdirAll(paths.Root, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", paths.Root, err)
		}
		m.DB = sqlite.NewDB(paths.Ledger())
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LLMSTXT_DIR or --dir to a writable directory\n")
			return fmt.Errorf("failed to open run ledger at %q: %w", paths.Ledger(), err)
		}
		deps.Runs = sqlite.NewRunService(m.DB)
	}

	if cmd == "crawl" {
		pipeline, err := m.newPipeline(ctx, &cli.Crawl, deps)
		if err != nil {
			return err
		}
		deps.Pipeline = pipeline
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the crawl pipeline for the crawl command's flags.
func (m *Main) newPipeline(ctx context.Context, c *CrawlCmd, deps *Dependencies) (*crawl.Pipeline, error) {
	logger := deps.Logger

	source := m.Source
	if source == nil {
		walker, err := m.newWalker(c, deps)
		if err != nil {
			return nil, err
		}
		source = walker
	}

	pipeline := &crawl.Pipeline{
		Source:   source,
		Store:    deps.Store,
		Combiner: deps.Combiner,
		Archiver: deps.Archiver,
		Versions: deps.Versions,
		Runs:     deps.Runs,
		Logger:   logger,
	}

	if !c.NoTokens {
		tokens, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			logger.Warn("token counting disabled", "err", err)
		} else {
			pipeline.Tokens = tokens
		}
	}

	publisher := m.Publisher
	if publisher == nil && c.Publish.Bucket != "" {
		p, err := s3.Open(ctx, s3.Config{
			Bucket:       c.Publish.Bucket,
			Prefix:       c.Publish.Prefix,
			Region:       c.Publish.Region,
			Profile:      c.Publish.Profile,
			Endpoint:     c.Publish.Endpoint,
			UsePathStyle: c.Publish.PathStyle,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check AWS credentials in the environment or .env")
			return nil, fmt.Errorf("failed to configure publisher: %w", err)
		}
		publisher = p
	}
	if publisher != nil {
		pipeline.Publisher = llmslog.NewLoggingPublisher(publisher, logger)
	}

	return pipeline, nil
}

// newWalker builds the Walker with the fetcher selected by --browser.
func (m *Main) newWalker(c *CrawlCmd, deps *Dependencies) (*crawl.Walker, error) {
	logger := deps.Logger

	var fetcher llmstxt.Fetcher
	if c.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = llmshttp.NewFetcher(llmshttp.WithTimeout(c.Timeout))
	}
	m.closers = append(m.closers, fetcher)

	return &crawl.Walker{
		Fetcher:      llmslog.NewLoggingFetcher(fetcher, logger),
		Links:        goquery.NewLinkExtractor(),
		Converter:    htmltomarkdown.NewConverter(),
		NewExtractor: newExtractor,
		Detector:     llmslog.NewLoggingDetector(goquery.NewDetector(), logger),
		Sitemaps:     llmslog.NewLoggingSitemapService(llmshttp.NewSitemapService(nil), logger),
		RateLimiter:  crawl.NewDomainLimiter(c.RPS, 1),
	}, nil
}

// newExtractor selects content with the configured CSS selector and falls
// back to trafilatura, then readability.
func newExtractor(opts llmstxt.ExtractOptions) llmstxt.Extractor {
	return goquery.NewExtractor(opts, trafilatura.NewExtractor(), readability.NewExtractor())
}

// printError writes err for the user. Application errors print their
// message; anything else prints in full.
func printError(w io.Writer, err error) {
	msg := llmstxt.ErrorMessage(err)
	if llmstxt.ErrorCode(err) == llmstxt.EINTERNAL {
		msg = err.Error()
	}
	fmt.Fprintf(w, "error: %s\n", msg)
}
