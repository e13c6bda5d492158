package seo

import (
	"strings"
	"unicode/utf8"
)

// maxDescriptionLength is the meta-description cutoff used by search
// engines; longer strings are truncated with an ellipsis.
const maxDescriptionLength = 160

// Title composes a page title with the site name.
func Title(title, siteName string) string {
	if title == "" {
		return siteName
	}
	return title + " | " + siteName
}

// Description truncates a meta description to the search-engine limit.
func Description(description string) string {
	if utf8.RuneCountInString(description) <= maxDescriptionLength {
		return description
	}

	runes := []rune(description)
	return strings.TrimSpace(string(runes[:maxDescriptionLength-3])) + "..."
}

// Canonical builds the canonical URL for a path.
func Canonical(siteURL, path string) string {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(siteURL, "/") + path
}
