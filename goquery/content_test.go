package goquery_test

import (
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/goquery"
	"github.com/fwojciec/llmstxt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mkdocsPage = `<!DOCTYPE html>
<html>
<head><title>Starter Tutorial - LlamaIndex</title></head>
<body data-md-color-scheme="default">
<nav class="md-nav md-nav--primary"><a href="/en/latest/">Home</a></nav>
<article class="md-content__inner md-typeset">
<h1 id="starter">Starter Tutorial<a class="headerlink" href="#starter">¶</a></h1>
<p>Read the <a href="/en/latest/install/">installation guide</a> first.</p>
</article>
<footer>Made with Material for MkDocs</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts element matching configured selector", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(llmstxt.ExtractOptions{Selector: "article.md-content__inner.md-typeset"})

		result, err := ext.Extract(mkdocsPage)

		require.NoError(t, err)
		assert.Equal(t, "Starter Tutorial - LlamaIndex", result.Title)
		assert.Contains(t, result.ContentHTML, "Starter Tutorial")
		assert.Contains(t, result.ContentHTML, `href="/en/latest/install/"`)
		assert.NotContains(t, result.ContentHTML, "Made with Material")
		assert.NotContains(t, result.ContentHTML, "headerlink")
	})

	t.Run("chooses selector from detected framework", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(llmstxt.ExtractOptions{})

		result, err := ext.Extract(mkdocsPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "installation guide")
		assert.NotContains(t, result.ContentHTML, "md-nav")
	})

	t.Run("ignore links keeps anchor text only", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(llmstxt.ExtractOptions{
			Selector:    "article",
			IgnoreLinks: true,
		})

		result, err := ext.Extract(mkdocsPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "installation guide")
		assert.NotContains(t, result.ContentHTML, "<a")
	})

	t.Run("falls back when selector matches nothing", func(t *testing.T) {
		t.Parallel()

		var calls int
		fallback := &mock.Extractor{
			ExtractFn: func(html string) (*llmstxt.ExtractResult, error) {
				calls++
				return &llmstxt.ExtractResult{Title: "Fallback", ContentHTML: "<p>Fallback body</p>"}, nil
			},
		}
		ext := goquery.NewExtractor(llmstxt.ExtractOptions{Selector: "div.missing"}, fallback)

		result, err := ext.Extract(`<html><head></head><body><p>x</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "Fallback", result.Title)
		assert.Contains(t, result.ContentHTML, "Fallback body")
	})

	t.Run("tries fallbacks in order", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Extractor{
			ExtractFn: func(html string) (*llmstxt.ExtractResult, error) {
				return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "nothing")
			},
		}
		second := &mock.Extractor{
			ExtractFn: func(html string) (*llmstxt.ExtractResult, error) {
				return &llmstxt.ExtractResult{ContentHTML: "<p>Second</p>"}, nil
			},
		}
		ext := goquery.NewExtractor(llmstxt.ExtractOptions{Selector: "main"}, failing, second)

		result, err := ext.Extract(`<html><body><p>x</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Second")
	})

	t.Run("returns ENOTFOUND when nothing matches", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(llmstxt.ExtractOptions{Selector: "main"})

		_, err := ext.Extract(`<html><body><p>x</p></body></html>`)

		require.Error(t, err)
		assert.Equal(t, llmstxt.ENOTFOUND, llmstxt.ErrorCode(err))
	})
}
