package devdocs

// SectionMatch pairs a document with one of its headings.
type SectionMatch struct {
	Document *Document `json:"document"`
	Heading  Heading   `json:"heading"`
}

// FilterDocuments returns the documents matching the selected tags, in input
// order. A non-empty typeTags keeps documents whose own tags intersect it; a
// non-empty subjectTags further keeps documents whose own or heading tags
// intersect it. An empty selection matches nothing.
func FilterDocuments(docs []*Document, typeTags, subjectTags []string) []*Document {
	if len(typeTags) == 0 && len(subjectTags) == 0 {
		return nil
	}

	var out []*Document
	for _, doc := range docs {
		if len(typeTags) > 0 && !intersects(typeTags, doc.Tags) {
			continue
		}
		if len(subjectTags) > 0 && !intersects(subjectTags, doc.AllTags()) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

// FilterSections returns (document, heading) pairs matching the selected
// tags. Type tags are checked against each document's own tags; subject tags
// against each heading's own tags. An empty selection matches nothing.
func FilterSections(docs []*Document, typeTags, subjectTags []string) []SectionMatch {
	if len(typeTags) == 0 && len(subjectTags) == 0 {
		return nil
	}

	var out []SectionMatch
	for _, doc := range docs {
		if len(typeTags) > 0 && !intersects(typeTags, doc.Tags) {
			continue
		}
		for _, h := range doc.Headings {
			if len(subjectTags) > 0 && !intersects(subjectTags, h.Tags) {
				continue
			}
			out = append(out, SectionMatch{Document: doc, Heading: h})
		}
	}
	return out
}

// FacetTags returns the subject tags selectable next to the given type tags.
// With no type tags selected it returns the whole tag universe of allDocs.
// Type tags are never included. The result is deduplicated case-insensitively
// and sorted.
func FacetTags(allDocs []*Document, selectedTypeTags []string) []string {
	var candidates []string
	for _, doc := range allDocs {
		if len(selectedTypeTags) > 0 && !intersects(selectedTypeTags, doc.Tags) {
			continue
		}
		candidates = append(candidates, doc.AllTags()...)
	}

	var out []string
	for _, tag := range UniqueTags(candidates) {
		if !IsTypeTag(tag) {
			out = append(out, tag)
		}
	}
	SortTags(out)
	return out
}

// AllTags returns every tag used by docs and their headings, deduplicated
// and sorted.
func AllTags(docs []*Document) []string {
	var tags []string
	for _, doc := range docs {
		tags = append(tags, doc.AllTags()...)
	}
	tags = UniqueTags(tags)
	SortTags(tags)
	return tags
}

// DocumentsByType groups docs by type tag. Every type tag has an entry, even
// when no document carries it. Input order is preserved inside each group.
func DocumentsByType(docs []*Document) map[string][]*Document {
	m := make(map[string][]*Document, len(TypeFilters))
	for _, f := range TypeFilters {
		m[f.Tag] = nil
		for _, doc := range docs {
			if doc.HasTag(f.Tag) {
				m[f.Tag] = append(m[f.Tag], doc)
			}
		}
	}
	return m
}
