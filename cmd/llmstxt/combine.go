package main

import "fmt"

// Run executes the combine command.
func (c *CombineCmd) Run(deps *Dependencies) error {
	result, err := deps.Combiner.Combine(deps.Ctx)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if !result.Written() {
		fmt.Fprintf(deps.Stdout, "No documents in %s. Run 'llmstxt crawl' first.\n", deps.Paths.Latest())
		return nil
	}
	printCombine(deps.Stdout, result, 0)
	return nil
}
