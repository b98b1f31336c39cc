package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of devdocs.HistoryService.
type HistoryService struct {
	CreateQAItemFn func(ctx context.Context, item *devdocs.QAItem) error
	FindQAItemsFn  func(ctx context.Context, filter devdocs.QAFilter) ([]*devdocs.QAItem, error)
	ClearQAItemsFn func(ctx context.Context) error
}

func (s *HistoryService) CreateQAItem(ctx context.Context, item *devdocs.QAItem) error {
	return s.CreateQAItemFn(ctx, item)
}

func (s *HistoryService) FindQAItems(ctx context.Context, filter devdocs.QAFilter) ([]*devdocs.QAItem, error) {
	return s.FindQAItemsFn(ctx, filter)
}

func (s *HistoryService) ClearQAItems(ctx context.Context) error {
	return s.ClearQAItemsFn(ctx)
}
