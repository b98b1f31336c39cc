package fs

import (
	"context"
	"strings"

	"github.com/fwojciec/devdocs"
)

// Ensure DocumentService implements devdocs.DocumentService at compile time.
var _ devdocs.DocumentService = (*DocumentService)(nil)

// DocumentService serves a loaded catalog from memory.
type DocumentService struct {
	catalog *devdocs.Catalog
}

// NewDocumentService returns a service over c.
func NewDocumentService(c *devdocs.Catalog) *DocumentService {
	if c == nil {
		c = &devdocs.Catalog{}
	}
	return &DocumentService{catalog: c}
}

// Open loads the content directory dir and returns a service over it.
func Open(ctx context.Context, dir string) (*DocumentService, error) {
	c, err := NewLoader(dir).Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewDocumentService(c), nil
}

// Catalog returns the topic and prompt trees.
func (s *DocumentService) Catalog(ctx context.Context) (*devdocs.Catalog, error) {
	return s.catalog, nil
}

// FindDocumentByID retrieves a document by ID.
// Returns ENOTFOUND if document does not exist.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*devdocs.Document, error) {
	if doc := s.catalog.Find(id); doc != nil {
		return doc, nil
	}
	return nil, devdocs.Errorf(devdocs.ENOTFOUND, "Document not found.")
}

// FindDocuments retrieves documents matching the filter in catalog order.
func (s *DocumentService) FindDocuments(ctx context.Context, filter devdocs.DocumentFilter) ([]*devdocs.Document, error) {
	var docs []*devdocs.Document
	switch {
	case filter.Prompts == nil:
		docs = s.catalog.All()
	case *filter.Prompts:
		docs = devdocs.Flatten(nil, s.catalog.Prompts)
	default:
		docs = devdocs.Flatten(nil, s.catalog.Topics)
	}

	if filter.ID != nil {
		docs = keep(docs, func(d *devdocs.Document) bool { return d.ID == *filter.ID })
	}
	if filter.Query != nil && strings.TrimSpace(*filter.Query) != "" {
		docs = devdocs.Search(docs, strings.TrimSpace(*filter.Query))
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(docs) {
			return []*devdocs.Document{}, nil
		}
		docs = docs[filter.Offset:]
	}
	if filter.Limit > 0 && len(docs) > filter.Limit {
		docs = docs[:filter.Limit]
	}
	return docs, nil
}

func keep(docs []*devdocs.Document, fn func(*devdocs.Document) bool) []*devdocs.Document {
	var out []*devdocs.Document
	for _, d := range docs {
		if fn(d) {
			out = append(out, d)
		}
	}
	return out
}
