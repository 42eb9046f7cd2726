package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmstxt"
)

var (
	_ llmstxt.DocumentStore = (*LoggingDocumentStore)(nil)
	_ llmstxt.Combiner      = (*LoggingCombiner)(nil)
	_ llmstxt.Archiver      = (*LoggingArchiver)(nil)
	_ llmstxt.Publisher     = (*LoggingPublisher)(nil)
)

// LoggingDocumentStore wraps a DocumentStore with debug logging.
type LoggingDocumentStore struct {
	next   llmstxt.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next llmstxt.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// SaveDocument delegates to the wrapped store and logs the write.
func (s *LoggingDocumentStore) SaveDocument(ctx context.Context, doc *llmstxt.Document) (err error) {
	defer func() {
		s.logger.Debug("save document",
			"slug", doc.Slug,
			"bytes", len(doc.Content),
			"err", err,
		)
	}()
	return s.next.SaveDocument(ctx, doc)
}

// ListDocuments delegates to the wrapped store.
func (s *LoggingDocumentStore) ListDocuments(ctx context.Context) ([]string, error) {
	return s.next.ListDocuments(ctx)
}

// LoggingCombiner wraps a Combiner and logs the aggregation summary.
type LoggingCombiner struct {
	next   llmstxt.Combiner
	logger *slog.Logger
}

// NewLoggingCombiner creates a new LoggingCombiner.
func NewLoggingCombiner(next llmstxt.Combiner, logger *slog.Logger) *LoggingCombiner {
	return &LoggingCombiner{next: next, logger: logger}
}

// Combine delegates to the wrapped combiner. Unreadable documents are
// logged as warnings and an empty aggregation as an error.
func (c *LoggingCombiner) Combine(ctx context.Context) (result *llmstxt.CombineResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.Error("combine", "duration", time.Since(begin), "err", err)
			return
		}
		for _, issue := range result.Issues {
			c.logger.Warn("skipped document", "slug", issue.Slug, "err", issue.Err)
		}
		if !result.Written() {
			c.logger.Error("no documents to combine", "duration", time.Since(begin))
			return
		}
		c.logger.Info("combine",
			"path", result.Path,
			"documents", len(result.Slugs),
			"excluded", len(result.Excluded),
			"bytes", result.Bytes,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Combine(ctx)
}

// LoggingArchiver wraps an Archiver and logs each snapshot.
type LoggingArchiver struct {
	next   llmstxt.Archiver
	logger *slog.Logger
}

// NewLoggingArchiver creates a new LoggingArchiver.
func NewLoggingArchiver(next llmstxt.Archiver, logger *slog.Logger) *LoggingArchiver {
	return &LoggingArchiver{next: next, logger: logger}
}

// Archive delegates to the wrapped archiver. A missing artifact is logged
// as a warning.
func (a *LoggingArchiver) Archive(ctx context.Context, tag string) (snap *llmstxt.Snapshot, err error) {
	defer func(begin time.Time) {
		switch {
		case err != nil:
			a.logger.Error("archive", "tag", tag, "err", err)
		case snap == nil:
			a.logger.Warn("nothing to archive", "tag", tag)
		default:
			a.logger.Info("archive",
				"tag", tag,
				"dir", snap.Dir,
				"files", len(snap.Files),
				"duration", time.Since(begin),
			)
		}
	}(time.Now())
	return a.next.Archive(ctx, tag)
}

// ListSnapshots delegates to the wrapped archiver.
func (a *LoggingArchiver) ListSnapshots(ctx context.Context) ([]string, error) {
	return a.next.ListSnapshots(ctx)
}

// LoggingPublisher wraps a Publisher and logs uploads.
type LoggingPublisher struct {
	next   llmstxt.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next llmstxt.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher and logs the object count.
func (p *LoggingPublisher) Publish(ctx context.Context, snap *llmstxt.Snapshot, artifactPath string) (n int, err error) {
	defer func(begin time.Time) {
		p.logger.Info("publish",
			"objects", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Publish(ctx, snap, artifactPath)
}
