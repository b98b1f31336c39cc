package devdocs

import (
	"context"
	"time"
)

// QAItem is one question and answer of the assistant conversation.
type QAItem struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the item contains invalid fields.
func (q *QAItem) Validate() error {
	if q.Question == "" {
		return Errorf(EINVALID, "question required")
	}
	return nil
}

// HistoryService represents a service for the assistant conversation.
type HistoryService interface {
	// CreateQAItem appends an item to the conversation.
	CreateQAItem(ctx context.Context, item *QAItem) error

	// FindQAItems returns the conversation, oldest first.
	FindQAItems(ctx context.Context, filter QAFilter) ([]*QAItem, error)

	// ClearQAItems removes every item of the conversation.
	ClearQAItems(ctx context.Context) error
}

// QAFilter represents a filter for FindQAItems.
type QAFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
