package devdocs

import (
	"regexp"
	"strings"
)

var (
	summaryHeadingRe    = regexp.MustCompile(`(?m)^#{1,6}[ \t].*$`)
	summaryInlineCodeRe = regexp.MustCompile("`[^`]*`")
	summaryLinkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	summaryListRe       = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`)
	summaryQuoteRe      = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	summaryBoldRe       = regexp.MustCompile(`(?:\*\*|__)(.*?)(?:\*\*|__)`)
	summaryItalicRe     = regexp.MustCompile(`\*(.*?)\*`)
	sentenceRe          = regexp.MustCompile(`^.*?[.!?]`)
	headingMarkerRe     = regexp.MustCompile(`#+ `)
)

// ExcerptLength is the number of runes kept by Excerpt.
const ExcerptLength = 300

// Summarize returns a short plain-text preview of markdown: the first
// sentence of the first line of prose, or the whole line when it has no
// sentence terminator. It returns "" when there is no prose.
func Summarize(markdown string) string {
	s := StripFrontmatter(markdown)
	s = fenceRe.ReplaceAllString(s, "")
	s = summaryHeadingRe.ReplaceAllString(s, "")
	s = summaryInlineCodeRe.ReplaceAllString(s, "")
	s = summaryLinkRe.ReplaceAllString(s, "${1}")
	s = summaryListRe.ReplaceAllString(s, "")
	s = summaryQuoteRe.ReplaceAllString(s, "")
	s = summaryBoldRe.ReplaceAllString(s, "${1}")
	s = summaryItalicRe.ReplaceAllString(s, "${1}")
	s = strings.TrimSpace(s)

	for _, line := range splitLines(s) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sentence := sentenceRe.FindString(line); sentence != "" {
			return sentence
		}
		return line
	}
	return ""
}

// Excerpt returns the card preview shown in search and filter results:
// frontmatter removed, heading markers dropped, code blocks replaced with
// "[Code Block]", cut to ExcerptLength runes.
func Excerpt(content string) string {
	s := StripFrontmatter(content)
	s = headingMarkerRe.ReplaceAllString(s, "")
	s = fenceRe.ReplaceAllString(s, "[Code Block]")
	if r := []rune(s); len(r) > ExcerptLength {
		s = string(r[:ExcerptLength])
	}
	return s
}
