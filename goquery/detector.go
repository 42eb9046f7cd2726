package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmstxt"
)

// Ensure Detector implements llmstxt.FrameworkDetector at compile time.
var _ llmstxt.FrameworkDetector = (*Detector)(nil)

// frameworkMarkers lists structural markers per framework in check order.
// VitePress is checked before VuePress since it reuses some of its markup.
var frameworkMarkers = []struct {
	framework llmstxt.Framework
	selectors []string
}{
	{llmstxt.FrameworkDocusaurus, []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container"}},
	{llmstxt.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{llmstxt.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"}},
	{llmstxt.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".VPDocAsideOutline"}},
	{llmstxt.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{llmstxt.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"}},
	{llmstxt.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"}},
}

// generatorNames maps substrings of the meta generator tag to frameworks.
var generatorNames = []struct {
	name      string
	framework llmstxt.Framework
}{
	{"sphinx", llmstxt.FrameworkSphinx},
	{"gitbook", llmstxt.FrameworkGitBook},
	{"docusaurus", llmstxt.FrameworkDocusaurus},
	{"mkdocs", llmstxt.FrameworkMkDocs},
	{"vitepress", llmstxt.FrameworkVitePress},
	{"vuepress", llmstxt.FrameworkVuePress},
	{"nextra", llmstxt.FrameworkNextra},
}

// Detector identifies documentation frameworks from HTML content.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) llmstxt.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return llmstxt.FrameworkUnknown
	}
	return detect(doc)
}

func detect(doc *goquery.Document) llmstxt.Framework {
	// The generator tag is the most reliable signal when present.
	if generator, ok := doc.Find("meta[name='generator']").Last().Attr("content"); ok {
		generator = strings.ToLower(generator)
		for _, g := range generatorNames {
			if strings.Contains(generator, g.name) {
				return g.framework
			}
		}
	}

	for _, m := range frameworkMarkers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
	}

	if hasGitBookClasses(doc) {
		return llmstxt.FrameworkGitBook
	}
	return llmstxt.FrameworkUnknown
}

// hasGitBookClasses requires at least two of GitBook's html element classes.
func hasGitBookClasses(doc *goquery.Document) bool {
	class, _ := doc.Find("html").Attr("class")
	var n int
	for _, c := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(class, c) {
			n++
		}
	}
	return n >= 2
}
