package fs

import (
	"context"
	"os"
	"strings"

	"github.com/fwojciec/llmstxt"
)

// Ensure Combiner implements llmstxt.Combiner at compile time.
var _ llmstxt.Combiner = (*Combiner)(nil)

// Combiner concatenates the documents of a directory into one artifact file.
type Combiner struct {
	dir      string
	artifact string
}

// NewCombiner creates a Combiner reading documents from dir and writing
// the artifact to the artifact path.
func NewCombiner(dir, artifact string) *Combiner {
	return &Combiner{dir: dir, artifact: artifact}
}

// Combine rebuilds the artifact. Changelog documents are excluded, empty
// ones skipped and unreadable ones reported as issues. When nothing
// survives the existing artifact is left untouched.
func (c *Combiner) Combine(ctx context.Context) (*llmstxt.CombineResult, error) {
	slugs, err := listSlugs(c.dir)
	if err != nil {
		return nil, err
	}

	result := &llmstxt.CombineResult{}

	var candidates []string
	for _, slug := range slugs {
		if llmstxt.IsChangelog(slug) {
			result.Excluded = append(result.Excluded, slug)
			continue
		}
		candidates = append(candidates, slug)
	}
	llmstxt.SortSlugs(candidates)

	var contents []string
	for _, slug := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(documentPath(c.dir, slug))
		if err != nil {
			result.Issues = append(result.Issues, llmstxt.DocumentIssue{Slug: slug, Err: err})
			continue
		}

		content := strings.TrimSpace(string(data))
		if content == "" {
			result.Empty = append(result.Empty, slug)
			continue
		}

		contents = append(contents, content)
		result.Slugs = append(result.Slugs, slug)
	}

	if len(contents) == 0 {
		return result, nil
	}

	joined := llmstxt.JoinDocuments(contents)
	if err := writeFile(c.artifact, []byte(joined)); err != nil {
		return nil, err
	}
	result.Path = c.artifact
	result.Bytes = len(joined)

	return result, nil
}
