package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.CodeService = (*CodeService)(nil)

// CodeService is a mock implementation of devdocs.CodeService.
type CodeService struct {
	SaveRegeneratedCodeFn   func(ctx context.Context, code *devdocs.RegeneratedCode) error
	FindRegeneratedCodeFn   func(ctx context.Context, documentID string) (map[string]string, error)
	DeleteRegeneratedCodeFn func(ctx context.Context, documentID string) error
}

func (s *CodeService) SaveRegeneratedCode(ctx context.Context, code *devdocs.RegeneratedCode) error {
	return s.SaveRegeneratedCodeFn(ctx, code)
}

func (s *CodeService) FindRegeneratedCode(ctx context.Context, documentID string) (map[string]string, error) {
	return s.FindRegeneratedCodeFn(ctx, documentID)
}

func (s *CodeService) DeleteRegeneratedCode(ctx context.Context, documentID string) error {
	return s.DeleteRegeneratedCodeFn(ctx, documentID)
}
