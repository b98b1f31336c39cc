package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of devdocs.DocumentService.
type DocumentService struct {
	CatalogFn          func(ctx context.Context) (*devdocs.Catalog, error)
	FindDocumentByIDFn func(ctx context.Context, id string) (*devdocs.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter devdocs.DocumentFilter) ([]*devdocs.Document, error)
}

func (s *DocumentService) Catalog(ctx context.Context) (*devdocs.Catalog, error) {
	return s.CatalogFn(ctx)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*devdocs.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter devdocs.DocumentFilter) ([]*devdocs.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
