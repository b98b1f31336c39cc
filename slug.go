package devdocs

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`[\s\p{Zs}]+`)
	nonSlugRe    = regexp.MustCompile(`[^\w-]+`)
)

// Slugify converts a heading title into a URL- and DOM-safe identifier:
// trimmed, lowercased, whitespace runs (Unicode space separators included)
// replaced with "-", and everything but word characters and hyphens removed.
//
// Slugify keeps no state, so two headings with the same title in one
// document share an ID.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRe.ReplaceAllString(s, "-")
	return nonSlugRe.ReplaceAllString(s, "")
}
