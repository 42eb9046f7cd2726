package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/crawl"
)

// maxURLWidth bounds URLs printed in lists.
const maxURLWidth = 80

// printReport writes a human-readable summary of a build.
func printReport(w io.Writer, paths llmstxt.Paths, r *llmstxt.Report) {
	if r == nil {
		return
	}

	saved := r.Count(llmstxt.OutcomeSaved)
	skipped := r.Count(llmstxt.OutcomeSkipped)
	failed := r.Count(llmstxt.OutcomeFailed)
	fmt.Fprintf(w, "Pages: %d saved, %d skipped, %d failed\n", saved, skipped, failed)

	counts := r.SkipCounts()
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, string(reason))
	}
	slices.Sort(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "  skipped (%s): %d\n", reason, counts[llmstxt.SkipReason(reason)])
	}

	if r.RunID != "" {
		fmt.Fprintf(w, "Changes since last run: %d new, %d changed, %d unchanged\n", r.New, r.Changed, r.Unchanged)
	}

	for _, c := range r.Collisions {
		fmt.Fprintf(w, "Slug collision: %s\n  %s replaced\n  %s\n", c.Slug,
			crawl.TruncateURL(c.Previous, maxURLWidth), crawl.TruncateURL(c.URL, maxURLWidth))
	}

	if r.Combine != nil {
		if r.Combine.Written() {
			printCombine(w, r.Combine, r.Tokens)
		} else {
			fmt.Fprintf(w, "No documents to combine in %s\n", paths.Latest())
		}
	}

	if r.Snapshot != nil {
		fmt.Fprintf(w, "Archived %d files to %s\n", len(r.Snapshot.Files), r.Snapshot.Dir)
	}
	if r.Version != "" {
		fmt.Fprintf(w, "Current version: %s\n", r.Version)
	}
	if r.Published > 0 {
		fmt.Fprintf(w, "Published %d objects\n", r.Published)
	}

	if failed == 0 && counts[llmstxt.SkipFetch] == 0 {
		return
	}
	fmt.Fprintln(w, "Failed pages:")
	for _, o := range r.Outcomes {
		if o.Status == llmstxt.OutcomeFailed || o.Reason == llmstxt.SkipFetch {
			fmt.Fprintf(w, "  %s: %v\n", crawl.TruncateURL(o.URL, maxURLWidth), o.Err)
		}
	}
}

// printCombine writes the artifact summary. tokens is omitted when zero.
func printCombine(w io.Writer, c *llmstxt.CombineResult, tokens int) {
	fmt.Fprintf(w, "Wrote %s: %d documents, %s", c.Path, len(c.Slugs), crawl.FormatBytes(c.Bytes))
	if tokens > 0 {
		fmt.Fprintf(w, ", %s", crawl.FormatTokens(tokens))
	}
	fmt.Fprintln(w)

	if len(c.Excluded) > 0 {
		fmt.Fprintf(w, "Excluded changelogs: %v\n", c.Excluded)
	}
	if len(c.Empty) > 0 {
		fmt.Fprintf(w, "Empty documents: %v\n", c.Empty)
	}
	for _, issue := range c.Issues {
		fmt.Fprintf(w, "Unreadable document %s: %v\n", issue.Slug, issue.Err)
	}
}
