package main

import (
	"fmt"

	"github.com/fwojciec/llmstxt"
)

// Run executes the archive command.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	if err := llmstxt.ValidateTag(c.Tag); err != nil {
		printError(deps.Stderr, err)
		return err
	}

	snap, err := deps.Archiver.Archive(deps.Ctx, c.Tag)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if snap == nil {
		fmt.Fprintf(deps.Stdout, "Nothing to archive: %s does not exist. Run 'llmstxt crawl' or 'llmstxt combine' first.\n", deps.Paths.Artifact())
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Archived %d files to %s\n", len(snap.Files), snap.Dir)

	if !c.UpdateVersion {
		return nil
	}
	if err := deps.Versions.UpdateVersion(deps.Ctx, c.Tag); err != nil {
		printError(deps.Stderr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Current version: %s\n", c.Tag)
	return nil
}
