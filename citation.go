package devdocs

// Citation is a doc:// link found in a rendered answer.
type Citation struct {
	DocumentID string `json:"documentId"`
	Text       string `json:"text"`
}

// CitationExtractor finds the documents cited by rendered HTML.
type CitationExtractor interface {
	// ExtractCitations returns one citation per cited document in order of
	// first appearance.
	ExtractCitations(html string) ([]Citation, error)
}
