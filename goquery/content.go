package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmstxt"
)

// Ensure Extractor implements llmstxt.Extractor at compile time.
var _ llmstxt.Extractor = (*Extractor)(nil)

// noiseSelectors match elements removed from extracted content.
const noiseSelectors = "script, style, noscript, a.headerlink, .md-source-file, .md-content__button"

// Extractor returns the HTML of the elements matching a CSS selector.
// With no selector configured, the selector is chosen from the detected
// framework. Pages where nothing matches are handed to the fallbacks in
// order.
type Extractor struct {
	selector    string
	ignoreLinks bool
	fallbacks   []llmstxt.Extractor
}

// NewExtractor creates an Extractor for opts with optional fallbacks.
func NewExtractor(opts llmstxt.ExtractOptions, fallbacks ...llmstxt.Extractor) *Extractor {
	return &Extractor{
		selector:    opts.Selector,
		ignoreLinks: opts.IgnoreLinks,
		fallbacks:   fallbacks,
	}
}

// Extract returns the page title and main content HTML.
// Returns ENOTFOUND when neither the selector nor any fallback finds content.
func (e *Extractor) Extract(html string) (*llmstxt.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &llmstxt.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	selector := e.selector
	if selector == "" {
		selector = llmstxt.ContentSelector(detect(doc))
	}
	if selector != "" {
		result.ContentHTML = selectionHTML(doc.Find(selector))
	}

	if strings.TrimSpace(result.ContentHTML) == "" {
		for _, fb := range e.fallbacks {
			res, err := fb.Extract(html)
			if err != nil || strings.TrimSpace(res.ContentHTML) == "" {
				continue
			}
			result.ContentHTML = res.ContentHTML
			if result.Title == "" {
				result.Title = res.Title
			}
			break
		}
	}

	if strings.TrimSpace(result.ContentHTML) == "" {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "no content matched selector %q", selector)
	}

	result.ContentHTML, err = clean(result.ContentHTML, e.ignoreLinks)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// selectionHTML concatenates the outer HTML of every selected element.
func selectionHTML(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Each(func(_ int, s *goquery.Selection) {
		h, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		b.WriteString(h)
	})
	return b.String()
}

// clean removes noise elements and, when ignoreLinks is set, replaces every
// anchor with its contents.
func clean(fragment string, ignoreLinks bool) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", llmstxt.Errorf(llmstxt.EINVALID, "failed to parse content: %v", err)
	}

	doc.Find(noiseSelectors).Remove()
	if ignoreLinks {
		doc.Find("a").Each(func(_ int, a *goquery.Selection) {
			a.ReplaceWithSelection(a.Contents())
		})
	}

	return doc.Find("body").Html()
}
