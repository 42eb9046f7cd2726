package goquery_test

import (
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="../getting_started/">Getting Started</a></nav>
<article>
<a href="/en/latest/api/">API</a>
<a href="https://github.com/run-llama/llama_index">GitHub</a>
</article>
</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://docs.example.com/en/latest/guides/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.example.com/en/latest/getting_started/",
			"https://docs.example.com/en/latest/api/",
			"https://github.com/run-llama/llama_index",
		}, links)
	})

	t.Run("strips fragments and removes duplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/docs/a#one">A1</a><a href="/docs/a#two">A2</a><a href="/docs/b">B</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/a", "https://example.com/docs/b"}, links)
	})

	t.Run("skips self links and non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		html := `<a href="#top">Top</a>
<a href="mailto:team@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="ftp://example.com/file">FTP</a>
<a href="">Empty</a>
<a href="/docs/next">Next</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/docs/page")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/next"}, links)
	})

	t.Run("honors base element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><base href="https://example.com/v2/"></head><body><a href="intro/">Intro</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/v1/page")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/v2/intro/"}, links)
	})

	t.Run("returns EINVALID for bad base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks("<a href='/x'>x</a>", "://bad")

		require.Error(t, err)
		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})
}
