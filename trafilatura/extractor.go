// Package trafilatura extracts main page content with go-trafilatura.
// It serves as the fallback when a page has no element matching the
// content selector.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/llmstxt"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements llmstxt.Extractor at compile time.
var _ llmstxt.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates an Extractor that keeps links and tables and drops
// comment sections.
func NewExtractor() *Extractor {
	return &Extractor{opts: trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
	}}
}

// Extract returns the title and main content of rawHTML.
// Returns ENOTFOUND when trafilatura finds no content.
func (e *Extractor) Extract(rawHTML string) (*llmstxt.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &llmstxt.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
