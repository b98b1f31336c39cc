package devdocs

import "strings"

// Search returns the documents whose title or content contains query,
// case-insensitively, in input order. An empty query matches nothing.
func Search(docs []*Document, query string) []*Document {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}

	var out []*Document
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Title), q) ||
			strings.Contains(strings.ToLower(doc.Content), q) {
			out = append(out, doc)
		}
	}
	return out
}

// RelevantDocuments picks the documents passed to the LLM as context for a
// question. It is a naive substring match on the whole question, falling
// back to its individual words, capped at limit documents.
func RelevantDocuments(docs []*Document, question string, limit int) []*Document {
	found := Search(docs, strings.TrimSpace(question))
	if len(found) == 0 {
		seen := make(map[string]bool)
		for _, word := range strings.Fields(question) {
			word = strings.Trim(word, `?!.,;:"'()`)
			if len([]rune(word)) < 4 {
				continue
			}
			for _, doc := range Search(docs, word) {
				if !seen[doc.ID] {
					seen[doc.ID] = true
					found = append(found, doc)
				}
			}
		}
	}
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found
}
