package mock

import "github.com/fwojciec/llmstxt"

var _ llmstxt.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of llmstxt.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
