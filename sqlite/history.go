package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/devdocs"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ devdocs.HistoryService = (*HistoryService)(nil)

// HistoryService implements devdocs.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateQAItem appends an item to the conversation. ID and CreatedAt are
// assigned here.
func (s *HistoryService) CreateQAItem(ctx context.Context, item *devdocs.QAItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	item.ID = uuid.New().String()
	item.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO qa_items (id, question, answer, created_at)
		VALUES (?, ?, ?, ?)
	`, item.ID, item.Question, item.Answer, item.CreatedAt.Format(time.RFC3339Nano))

	return err
}

// FindQAItems returns the conversation, oldest first.
func (s *HistoryService) FindQAItems(ctx context.Context, filter devdocs.QAFilter) ([]*devdocs.QAItem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, question, answer, created_at FROM qa_items ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*devdocs.QAItem{}
	for rows.Next() {
		var item devdocs.QAItem
		var createdAt string

		if err := rows.Scan(&item.ID, &item.Question, &item.Answer, &createdAt); err != nil {
			return nil, err
		}
		if item.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		items = append(items, &item)
	}

	return items, rows.Err()
}

// ClearQAItems removes every item of the conversation.
func (s *HistoryService) ClearQAItems(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM qa_items")
	return err
}
