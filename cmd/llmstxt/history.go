package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/llmstxt"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, llmstxt.RunFilter{Limit: c.Limit})
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'llmstxt crawl' to start one.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSTATUS\tTAG\tSAVED\tSKIPPED\tFAILED\tDOCS\tSEED")
	for _, r := range runs {
		tag := r.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.StartedAt.Local().Format(time.DateTime), r.Status, tag,
			r.Saved, r.Skipped, r.Failed, r.Documents, r.SeedURL)
	}
	return w.Flush()
}
