package devdocs

import (
	"strings"
)

// MinHeadings is the number of level-2 headings a document needs before its
// heading list is populated. Documents with fewer headings get none, and the
// browser shows no heading sub-menu for them.
const MinHeadings = 2

// NoSectionContent is shown in place of an empty section.
const NoSectionContent = "No additional content for this section."

// NewDocument builds a Document from its metadata and raw markdown. Tags come
// from the frontmatter and headings from the "## " lines of the body.
func NewDocument(id, title, icon, content string) *Document {
	doc := &Document{
		ID:      id,
		Title:   title,
		Icon:    icon,
		Content: content,
		Tags:    ParseFrontmatter(content).Tags,
	}
	if headings := ExtractHeadings(content); len(headings) >= MinHeadings {
		doc.Headings = headings
	}
	return doc
}

// ExtractHeadings returns every level-2 heading of markdown in order. A
// "tags: a, b" line directly below a heading sets that heading's tags.
func ExtractHeadings(markdown string) []Heading {
	lines := splitLines(trimFrontmatterBlock(markdown))

	var headings []Heading
	for i, line := range lines {
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(line, "## "))
		h := Heading{ID: Slugify(title), Title: title}
		if i+1 < len(lines) {
			h.Tags = ParseInlineTags(lines[i+1])
		}
		headings = append(headings, h)
	}
	return headings
}

// FindHeading returns the heading of doc with the given ID.
func FindHeading(doc *Document, id string) (Heading, bool) {
	for _, h := range doc.Headings {
		if h.ID == id {
			return h, true
		}
	}
	return Heading{}, false
}

// ExtractSection returns the body of the "## " heading whose title equals
// headingTitle, up to the next "## " heading. Tag lines are dropped and the
// result is trimmed. It returns "" when the heading is missing or its body
// is empty.
func ExtractSection(content, headingTitle string) string {
	target := strings.TrimSpace(headingTitle)

	var body []string
	inSection := false
	for _, line := range splitLines(trimFrontmatterBlock(content)) {
		if strings.HasPrefix(line, "## ") {
			if inSection {
				break
			}
			if strings.TrimSpace(strings.TrimPrefix(line, "## ")) == target {
				inSection = true
			}
			continue
		}
		if inSection && !strings.HasPrefix(line, "tags:") {
			body = append(body, line)
		}
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}

// splitLines splits s on "\n", dropping a trailing "\r" from each line.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
