// Package llmstxt builds a single knowledge-base file (llms.txt) from a
// documentation website. It crawls the site, keeps the pages worth reading,
// stores each one as a markdown document, concatenates them in a
// deterministic order, and archives the result under version tags.
//
// This package contains domain types, interfaces and pure text functions.
// Implementations live in subdirectories named after their primary
// dependency (e.g., fs/, sqlite/, goquery/, htmltomarkdown/).
package llmstxt
