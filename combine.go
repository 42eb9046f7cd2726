package llmstxt

import (
	"slices"
	"strings"
)

// Separator joins documents in the combined artifact.
const Separator = "\n\n---\n\n"

// IsChangelog reports whether a slug names a changelog page.
// Changelog pages are left out of the combined artifact.
func IsChangelog(slug string) bool {
	return strings.Contains(strings.ToLower(slug), "changelog")
}

// SortSlugs orders slugs for the combined artifact: fewer dot-separated
// parts first, then lexicographically by the sequence of parts.
func SortSlugs(slugs []string) {
	slices.SortStableFunc(slugs, CompareSlugs)
}

// CompareSlugs compares two slugs by part count and then by their parts.
func CompareSlugs(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	if len(pa) != len(pb) {
		return len(pa) - len(pb)
	}
	return slices.Compare(pa, pb)
}

// JoinDocuments concatenates document contents with Separator.
func JoinDocuments(contents []string) string {
	return strings.Join(contents, Separator)
}
