package llmstxt_test

import (
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "index",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "index",
		},
		{
			name: "path separators become dots",
			url:  "https://example.com/en/latest/getting_started/",
			want: "en.latest.getting_started",
		},
		{
			name: "percent-encoded sequences are decoded",
			url:  "https://example.com/a/b%20c",
			want: "a.b c",
		},
		{
			name: "ignores query string",
			url:  "https://example.com/docs/api?version=2",
			want: "docs.api",
		},
		{
			name: "ignores fragment",
			url:  "https://example.com/docs/api#section",
			want: "docs.api",
		},
		{
			name: "malformed escape stays literal",
			url:  "https://example.com/docs/100%zz",
			want: "docs.100%zz",
		},
		{
			name: "truncated escape stays literal",
			url:  "https://example.com/docs/50%2",
			want: "docs.50%2",
		},
		{
			name: "decoded slash does not create a directory",
			url:  "https://example.com/api/a%2Fb",
			want: "api.a.b",
		},
		{
			name: "multibyte escapes decode to UTF-8",
			url:  "https://example.com/docs/caf%C3%A9",
			want: "docs.café",
		},
		{
			name: "existing dots are kept",
			url:  "https://example.com/api/v1.2/reference",
			want: "api.v1.2.reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, llmstxt.Slug(tt.url))
		})
	}
}

func TestSlug_IsDeterministicAcrossHostsAndQueries(t *testing.T) {
	t.Parallel()

	// Given URLs that differ only in scheme, host, query or fragment
	urls := []string{
		"https://docs.example.com/guide/install/",
		"http://mirror.example.org/guide/install",
		"https://docs.example.com/guide/install?ref=nav",
		"https://docs.example.com/guide/install/#linux",
	}

	// Then they all collide onto the same slug
	for _, u := range urls {
		assert.Equal(t, "guide.install", llmstxt.Slug(u), u)
	}
}
