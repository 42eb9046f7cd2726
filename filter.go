package llmstxt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinContentLength is the shortest markdown text worth storing, in characters.
const MinContentLength = 10

// NotFoundMarker is the markdown a documentation site renders for a missing page.
const NotFoundMarker = "# 404 - Not found"

// SkipReason explains why a page was not stored.
type SkipReason string

// SkipReason values. SkipNone means the page was accepted.
const (
	SkipNone     SkipReason = ""
	SkipEmpty    SkipReason = "empty content"
	SkipNotFound SkipReason = "404 page"
	SkipFetch    SkipReason = "fetch failed"
)

var fencedBlockRe = regexp.MustCompile("(?s)```[^\n]*\n(.*?)```")

// FilterContent decides whether markdown is worth storing and normalizes it.
// It returns the text to store and SkipNone, or an empty string and the
// reason the text was rejected.
func FilterContent(markdown string) (string, SkipReason) {
	if utf8.RuneCountInString(markdown) < MinContentLength {
		return "", SkipEmpty
	}
	if strings.TrimSpace(markdown) == NotFoundMarker {
		return "", SkipNotFound
	}
	return StripNumericBlocks(markdown), SkipNone
}

// StripNumericBlocks removes fenced code blocks whose body is only digits
// and whitespace (line-number gutters and similar placeholders). Digits and
// whitespace are Unicode classes, so full-width digits and non-breaking
// spaces count.
// Any other block, and all text outside blocks, is returned unchanged.
func StripNumericBlocks(markdown string) string {
	return fencedBlockRe.ReplaceAllStringFunc(markdown, func(block string) string {
		body := fencedBlockRe.FindStringSubmatch(block)[1]
		if isNumericOnly(body) {
			return ""
		}
		return block
	})
}

func isNumericOnly(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && !unicode.IsSpace(r)
	}) < 0
}
