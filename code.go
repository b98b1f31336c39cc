package devdocs

import (
	"context"
	"time"
)

// RegeneratedCode is a replacement for one code block of one document,
// produced by the assistant.
type RegeneratedCode struct {
	// Key is CodeKey(DocumentID, original code).
	Key        string    `json:"key"`
	DocumentID string    `json:"documentId"`
	Code       string    `json:"code"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the replacement contains invalid fields.
func (c *RegeneratedCode) Validate() error {
	if c.Key == "" {
		return Errorf(EINVALID, "code key required")
	} else if c.DocumentID == "" {
		return Errorf(EINVALID, "document ID required")
	} else if c.Code == "" {
		return Errorf(EINVALID, "code required")
	}
	return nil
}

// CodeService represents a service for regenerated code blocks.
type CodeService interface {
	// SaveRegeneratedCode stores a replacement, overwriting an earlier one
	// with the same key.
	SaveRegeneratedCode(ctx context.Context, code *RegeneratedCode) error

	// FindRegeneratedCode returns the replacements of a document keyed by
	// code key, in the form RenderOptions.Regenerated expects.
	FindRegeneratedCode(ctx context.Context, documentID string) (map[string]string, error)

	// DeleteRegeneratedCode removes every replacement of a document.
	DeleteRegeneratedCode(ctx context.Context, documentID string) error
}
