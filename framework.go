package llmstxt

// Framework identifies a documentation framework.
type Framework string

// Framework constants.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// contentSelectors maps frameworks to the element holding the page body.
var contentSelectors = map[Framework]string{
	FrameworkDocusaurus: "article .theme-doc-markdown",
	FrameworkMkDocs:     "article.md-content__inner.md-typeset",
	FrameworkSphinx:     "div[role='main']",
	FrameworkVuePress:   ".theme-default-content",
	FrameworkVitePress:  ".vp-doc",
	FrameworkGitBook:    "main",
	FrameworkNextra:     "article",
}

// ContentSelector returns the CSS selector of the main content element
// for framework. Returns an empty string for unknown frameworks.
func ContentSelector(framework Framework) string {
	return contentSelectors[framework]
}
