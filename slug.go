package llmstxt

import (
	"net/url"
	"strings"
)

// IndexSlug is the slug of a page whose URL has an empty path.
const IndexSlug = "index"

// slugReplacer maps path separators produced by percent-decoding to dots
// so a slug always names a single file inside the working directory.
var slugReplacer = strings.NewReplacer("/", ".", `\`, ".")

// Slug converts a page URL into a filesystem-safe document identifier.
// The path is stripped of leading and trailing slashes, each remaining
// slash becomes a dot, and the result is percent-decoded.
// Scheme, host, query and fragment are ignored, so two URLs with the
// same path always map to the same slug.
//
// Example: https://example.com/docs/a/b%20c/ → docs.a.b c
func Slug(rawURL string) string {
	path := strings.Trim(escapedPath(rawURL), "/")
	if path == "" {
		return IndexSlug
	}
	return slugReplacer.Replace(unescape(strings.ReplaceAll(path, "/", ".")))
}

// escapedPath returns the still-encoded path component of rawURL.
// URLs that net/url rejects are split by hand.
func escapedPath(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if u.Opaque != "" {
			return u.Opaque
		}
		return u.EscapedPath()
	}

	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+len("://"):]
		if j := strings.Index(s, "/"); j >= 0 {
			s = s[j:]
		} else {
			s = ""
		}
	}
	return s
}

// unescape decodes %XX sequences. Malformed sequences are kept literally
// and invalid UTF-8 is replaced with U+FFFD.
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
