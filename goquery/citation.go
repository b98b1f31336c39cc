// Package goquery inspects rendered HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/devdocs"
)

// Ensure CitationExtractor implements devdocs.CitationExtractor.
var _ devdocs.CitationExtractor = (*CitationExtractor)(nil)

// citationSelector matches the anchors produced for doc:// links.
const citationSelector = `a[href^="doc://"]`

// CitationExtractor finds doc:// links in rendered answers.
type CitationExtractor struct{}

// NewCitationExtractor creates a new CitationExtractor.
func NewCitationExtractor() *CitationExtractor {
	return &CitationExtractor{}
}

// ExtractCitations returns the documents linked from html, deduplicated by
// document ID and kept in document order. Links with a fragment cite the
// document itself. The link text of the first occurrence is kept.
func (e *CitationExtractor) ExtractCitations(html string) ([]devdocs.Citation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, devdocs.Errorf(devdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	citations := []devdocs.Citation{}
	doc.Find(citationSelector).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		id, ok := devdocs.ResolveLink(strings.TrimSpace(href))
		if !ok {
			return
		}
		id, _, _ = strings.Cut(id, "#")
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		citations = append(citations, devdocs.Citation{
			DocumentID: id,
			Text:       strings.TrimSpace(sel.Text()),
		})
	})
	return citations, nil
}
