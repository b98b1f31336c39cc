package devdocs

import "strings"

// FormatSnippets formats documents as LLM context. Each document is headed by
// its title and its doc:// link so answers can cite it. Frontmatter is
// removed. Documents are separated by blank lines.
func FormatSnippets(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.ID
		}
		parts = append(parts, "## Document: "+header+" ("+DocLinkScheme+doc.ID+")\n"+StripFrontmatter(doc.Content))
	}

	return strings.Join(parts, "\n\n")
}
