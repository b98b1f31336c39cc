package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/devdocs"
)

// Ensure LoggingHistoryService implements devdocs.HistoryService.
var _ devdocs.HistoryService = (*LoggingHistoryService)(nil)

// LoggingHistoryService wraps a HistoryService with debug logging.
type LoggingHistoryService struct {
	next   devdocs.HistoryService
	logger *slog.Logger
}

// NewLoggingHistoryService creates a new LoggingHistoryService.
func NewLoggingHistoryService(next devdocs.HistoryService, logger *slog.Logger) *LoggingHistoryService {
	return &LoggingHistoryService{next: next, logger: logger}
}

// CreateQAItem delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) CreateQAItem(ctx context.Context, item *devdocs.QAItem) (err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "history create",
			"id", item.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateQAItem(ctx, item)
}

// FindQAItems delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) FindQAItems(ctx context.Context, filter devdocs.QAFilter) (items []*devdocs.QAItem, err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "history find",
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindQAItems(ctx, filter)
}

// ClearQAItems delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) ClearQAItems(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "history clear",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ClearQAItems(ctx)
}
