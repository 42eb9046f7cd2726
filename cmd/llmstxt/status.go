package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/llmstxt/crawl"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	slugs, err := deps.Store.ListDocuments(deps.Ctx)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Documents: %d in %s\n", len(slugs), deps.Paths.Latest())

	switch info, err := os.Stat(deps.Paths.Artifact()); {
	case err == nil:
		fmt.Fprintf(deps.Stdout, "Artifact:  %s (%s)\n", deps.Paths.Artifact(), crawl.FormatBytes(int(info.Size())))
	case os.IsNotExist(err):
		fmt.Fprintln(deps.Stdout, "Artifact:  none")
	default:
		printError(deps.Stderr, err)
		return err
	}

	tag, ok, err := deps.Versions.CurrentVersion(deps.Ctx)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if !ok {
		tag = "none"
	}
	fmt.Fprintf(deps.Stdout, "Version:   %s\n", tag)

	tags, err := deps.Archiver.ListSnapshots(deps.Ctx)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Snapshots: %d\n", len(tags))
	return nil
}
