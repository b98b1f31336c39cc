package devdocs

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// frontmatterRe matches a leading block delimited by two "---" lines.
	frontmatterRe = regexp.MustCompile(`^---\r?\n(?:((?s:.*?))\r?\n)??---(?:\r?\n|$)`)

	// tagsLineRe matches "tags:" metadata lines anywhere in the text.
	tagsLineRe = regexp.MustCompile(`(?m)^tags:.*(?:\n|$)`)
)

// StripFrontmatter removes the leading frontmatter block and every "tags:"
// line from content. Repeated calls return the same result.
//
// Stripping repeats until nothing changes, so a "---" delimited block that
// becomes leading after a pass is removed as well. Body content between a
// later pair of "---" lines is lost when it surfaces this way, as in
// "tags: x\n---\ninner\n---\nbody" or a frontmatter block followed directly
// by a horizontal rule pair; both reduce to "body".
func StripFrontmatter(content string) string {
	for {
		stripped := stripFrontmatterOnce(content)
		if stripped == content {
			return stripped
		}
		content = stripped
	}
}

func stripFrontmatterOnce(content string) string {
	s := trimFrontmatterBlock(content)
	s = tagsLineRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// trimFrontmatterBlock removes only the leading frontmatter block, keeping
// section "tags:" lines in place.
func trimFrontmatterBlock(content string) string {
	return strings.TrimSpace(frontmatterRe.ReplaceAllString(content, ""))
}

// Frontmatter holds the metadata parsed from a document's frontmatter block.
type Frontmatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// ParseFrontmatter extracts frontmatter metadata from content. It is
// best-effort: missing frontmatter yields a zero value, and a block that is
// not valid YAML falls back to a line scan of its "tags:" list.
func ParseFrontmatter(content string) Frontmatter {
	m := frontmatterRe.FindStringSubmatch(content)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return Frontmatter{}
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(m[1]), &fm); err != nil {
		return Frontmatter{Tags: scanTagList(m[1])}
	}
	fm.Tags = UniqueTags(fm.Tags)
	return fm
}

// scanTagList reads "- value" lines following a "tags:" key. Blank lines
// are skipped; the first other line ends the list.
func scanTagList(block string) []string {
	var tags []string
	inTags := false
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inTags {
			if strings.HasPrefix(trimmed, "tags:") {
				if inline := ParseInlineTags(trimmed); len(inline) > 0 {
					return inline
				}
				inTags = true
			}
			continue
		}
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "-") {
			break
		}
		tag := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		tags = append(tags, strings.Trim(tag, `"'`))
	}
	return UniqueTags(tags)
}

// ParseInlineTags parses a section tag line of the form "tags: a, b, c".
// It returns nil when line is not a tag line.
func ParseInlineTags(line string) []string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "tags:") {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(strings.TrimPrefix(trimmed, "tags:"), ",") {
		tags = append(tags, strings.Trim(strings.TrimSpace(tag), `"'`))
	}
	return UniqueTags(tags)
}
