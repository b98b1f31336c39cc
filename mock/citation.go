package mock

import "github.com/fwojciec/devdocs"

var _ devdocs.CitationExtractor = (*CitationExtractor)(nil)

// CitationExtractor is a mock implementation of devdocs.CitationExtractor.
type CitationExtractor struct {
	ExtractCitationsFn func(html string) ([]devdocs.Citation, error)
}

func (e *CitationExtractor) ExtractCitations(html string) ([]devdocs.Citation, error) {
	return e.ExtractCitationsFn(html)
}
