package main

import (
	"fmt"

	"github.com/fwojciec/llmstxt"
)

// Run executes the version show command.
func (c *VersionShowCmd) Run(deps *Dependencies) error {
	tag, ok, err := deps.Versions.CurrentVersion(deps.Ctx)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if !ok {
		fmt.Fprintln(deps.Stdout, "No version recorded. Use 'llmstxt version set <tag>' or 'llmstxt crawl --tag'.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, tag)
	return nil
}

// Run executes the version set command.
func (c *VersionSetCmd) Run(deps *Dependencies) error {
	if err := llmstxt.ValidateTag(c.Tag); err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if err := deps.Versions.UpdateVersion(deps.Ctx, c.Tag); err != nil {
		printError(deps.Stderr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Current version: %s\n", c.Tag)
	return nil
}

// Run executes the versions command.
func (c *VersionsCmd) Run(deps *Dependencies) error {
	tags, err := deps.Archiver.ListSnapshots(deps.Ctx)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived versions. Use 'llmstxt archive <tag>' to create one.")
		return nil
	}

	current, _, err := deps.Versions.CurrentVersion(deps.Ctx)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	for _, tag := range tags {
		marker := " "
		if tag == current {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", marker, tag)
	}
	return nil
}
