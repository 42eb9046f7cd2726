package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/llmstxt"
)

// Pipeline runs a full build: crawl, filter, name, store, combine and,
// with a tag, archive.
//
// Source, Store, Combiner, Archiver and Versions are required. Runs,
// Publisher and Tokens are optional.
type Pipeline struct {
	Source    llmstxt.PageSource
	Store     llmstxt.DocumentStore
	Combiner  llmstxt.Combiner
	Archiver  llmstxt.Archiver
	Versions  llmstxt.VersionService
	Runs      llmstxt.RunService
	Publisher llmstxt.Publisher
	Tokens    llmstxt.TokenCounter
	Logger    *slog.Logger
}

// build is the state of one Run call. Pages are handled on the walker's
// coordinator goroutine, so no locking is needed.
type build struct {
	*Pipeline
	report   *llmstxt.Report
	run      *llmstxt.Run
	previous map[string]string
	owners   map[string]string
}

// Run crawls cfg.SeedURL and builds the knowledge base. With a non-empty
// tag the result is archived under tag and the version marker updated.
//
// The returned report is never nil. When a step fails the error names the
// step and the report covers the work done before it. Stored documents are
// kept on failure.
func (p *Pipeline) Run(ctx context.Context, cfg llmstxt.CrawlConfig, tag string) (*llmstxt.Report, error) {
	b := &build{
		Pipeline: p,
		report:   &llmstxt.Report{},
		owners:   make(map[string]string),
	}

	if tag != "" {
		if err := llmstxt.ValidateTag(tag); err != nil {
			return b.report, err
		}
	}

	if err := b.startRun(ctx, cfg, tag); err != nil {
		return b.report, fmt.Errorf("ledger: %w", err)
	}

	if err := p.Source.Crawl(ctx, cfg, func(page *llmstxt.PageResult) error {
		b.handle(ctx, page)
		return nil
	}); err != nil {
		b.finishRun(llmstxt.RunStatusFailed)
		return b.report, fmt.Errorf("crawl: %w", err)
	}

	result, err := p.Combiner.Combine(ctx)
	if err != nil {
		b.finishRun(llmstxt.RunStatusFailed)
		return b.report, fmt.Errorf("combine: %w", err)
	}
	b.report.Combine = result
	b.countTokens(ctx, result)

	if tag != "" {
		if err := b.archive(ctx, tag); err != nil {
			b.finishRun(llmstxt.RunStatusFailed)
			return b.report, err
		}
	}

	b.finishRun(llmstxt.RunStatusFinished)
	return b.report, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// handle filters, names and stores one crawled page and records its outcome.
func (b *build) handle(ctx context.Context, page *llmstxt.PageResult) {
	outcome := b.outcome(ctx, page)
	b.report.Outcomes = append(b.report.Outcomes, outcome)

	if b.run == nil {
		return
	}
	if err := b.Runs.RecordPage(ctx, b.run.ID, &outcome); err != nil {
		b.logger().Warn("record page", "url", page.URL, "err", err)
	}
}

func (b *build) outcome(ctx context.Context, page *llmstxt.PageResult) llmstxt.PageOutcome {
	outcome := llmstxt.PageOutcome{URL: page.URL}

	if page.Err != nil {
		outcome.Status = llmstxt.OutcomeSkipped
		outcome.Reason = llmstxt.SkipFetch
		outcome.Err = page.Err
		b.logger().Warn("skipped page", "url", page.URL, "reason", outcome.Reason, "err", page.Err)
		return outcome
	}

	content, reason := llmstxt.FilterContent(page.Markdown)
	if reason != llmstxt.SkipNone {
		outcome.Status = llmstxt.OutcomeSkipped
		outcome.Reason = reason
		b.logger().Info("skipped page", "url", page.URL, "reason", reason)
		return outcome
	}

	slug := llmstxt.Slug(page.URL)
	outcome.Slug = slug
	if err := b.Store.SaveDocument(ctx, &llmstxt.Document{Slug: slug, Content: content}); err != nil {
		outcome.Status = llmstxt.OutcomeFailed
		outcome.Err = err
		b.logger().Error("save document", "url", page.URL, "slug", slug, "err", err)
		return outcome
	}

	if prev, ok := b.owners[slug]; ok && prev != page.URL {
		b.report.Collisions = append(b.report.Collisions, llmstxt.Collision{Slug: slug, Previous: prev, URL: page.URL})
		b.logger().Warn("slug collision", "slug", slug, "previous", prev, "url", page.URL)
	}
	b.owners[slug] = page.URL

	outcome.Status = llmstxt.OutcomeSaved
	outcome.Hash = ComputeHash(content)
	outcome.Bytes = len(content)
	b.compare(slug, outcome.Hash)

	return outcome
}

// compare counts a saved document against the previous run.
func (b *build) compare(slug, hash string) {
	if b.previous == nil {
		return
	}
	switch prev, ok := b.previous[slug]; {
	case !ok:
		b.report.New++
	case prev != hash:
		b.report.Changed++
	default:
		b.report.Unchanged++
	}
}

func (b *build) startRun(ctx context.Context, cfg llmstxt.CrawlConfig, tag string) error {
	if b.Runs == nil {
		return nil
	}

	run := &llmstxt.Run{SeedURL: cfg.SeedURL, Tag: tag}
	if err := b.Runs.CreateRun(ctx, run); err != nil {
		return err
	}
	previous, err := b.Runs.PreviousHashes(ctx, run.ID)
	if err != nil {
		return err
	}

	b.run = run
	b.previous = previous
	b.report.RunID = run.ID
	return nil
}

// finishRun stores the run counters. The ledger is bookkeeping, so a
// failure here is logged and does not fail the build.
func (b *build) finishRun(status llmstxt.RunStatus) {
	if b.run == nil {
		return
	}

	b.run.Status = status
	b.run.Saved = b.report.Count(llmstxt.OutcomeSaved)
	b.run.Skipped = b.report.Count(llmstxt.OutcomeSkipped)
	b.run.Failed = b.report.Count(llmstxt.OutcomeFailed)
	if c := b.report.Combine; c != nil {
		b.run.Documents = len(c.Slugs)
		b.run.Bytes = c.Bytes
	}

	// The build context may already be canceled.
	if err := b.Runs.FinishRun(context.Background(), b.run); err != nil {
		b.logger().Warn("finish run", "run", b.run.ID, "err", err)
	}
}

func (b *build) countTokens(ctx context.Context, result *llmstxt.CombineResult) {
	if b.Tokens == nil || !result.Written() {
		return
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		b.logger().Warn("read artifact for token count", "path", result.Path, "err", err)
		return
	}
	tokens, err := b.Tokens.CountTokens(ctx, string(data))
	if err != nil {
		b.logger().Warn("count tokens", "err", err)
		return
	}
	b.report.Tokens = tokens
}

// archive snapshots the build under tag, updates the version marker and
// publishes the snapshot. Nothing is marked or published when there was
// no artifact to archive.
func (b *build) archive(ctx context.Context, tag string) error {
	snap, err := b.Archiver.Archive(ctx, tag)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	b.report.Snapshot = snap
	if snap == nil {
		return nil
	}

	if err := b.Versions.UpdateVersion(ctx, tag); err != nil {
		return fmt.Errorf("update version: %w", err)
	}
	b.report.Version = tag

	if b.Publisher == nil {
		return nil
	}
	n, err := b.Publisher.Publish(ctx, snap, filepath.Join(snap.Dir, llmstxt.ArtifactName))
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	b.report.Published = n
	return nil
}
