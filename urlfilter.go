package llmstxt

import (
	"regexp"
	"strings"
)

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// ParseURLFilter compiles wildcard patterns into a URLFilter.
// A pattern is matched against the whole URL; '*' matches any run of
// characters (slashes included) and '?' matches a single character.
// Returns nil when both lists are empty.
func ParseURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	f := &URLFilter{}
	for _, p := range include {
		re, err := CompileWildcard(p)
		if err != nil {
			return nil, err
		}
		f.Include = append(f.Include, re)
	}
	for _, p := range exclude {
		re, err := CompileWildcard(p)
		if err != nil {
			return nil, err
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}

// CompileWildcard converts a wildcard pattern into an anchored regular expression.
func CompileWildcard(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, Errorf(EINVALID, "empty URL pattern")
	}

	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL pattern %q: %v", pattern, err)
	}
	return re, nil
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	// If include patterns exist, URL must match at least one
	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
