// Package readability extracts main page content with go-readability.
// It is the last resort when neither the content selector nor
// trafilatura finds the page body.
package readability

import (
	"strings"

	"github.com/fwojciec/llmstxt"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements llmstxt.Extractor at compile time.
var _ llmstxt.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and main content of rawHTML.
// Returns ENOTFOUND when readability finds no article.
func (e *Extractor) Extract(rawHTML string) (*llmstxt.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "no readable content found")
	}

	return &llmstxt.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
