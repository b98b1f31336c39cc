package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/devdocs"
)

// Compile-time interface verification.
var _ devdocs.CodeService = (*CodeService)(nil)

// CodeService implements devdocs.CodeService using SQLite.
type CodeService struct {
	db *DB
}

// NewCodeService creates a new CodeService.
func NewCodeService(db *DB) *CodeService {
	return &CodeService{db: db}
}

// SaveRegeneratedCode stores a replacement, overwriting an earlier one with
// the same key.
func (s *CodeService) SaveRegeneratedCode(ctx context.Context, code *devdocs.RegeneratedCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	code.UpdatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO regenerated_code (key, document_id, code, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			document_id = excluded.document_id,
			code = excluded.code,
			updated_at = excluded.updated_at
	`, code.Key, code.DocumentID, code.Code, code.UpdatedAt.Format(time.RFC3339Nano))

	return err
}

// FindRegeneratedCode returns the replacements of a document keyed by code
// key.
func (s *CodeService) FindRegeneratedCode(ctx context.Context, documentID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, code FROM regenerated_code WHERE document_id = ?", documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make(map[string]string)
	for rows.Next() {
		var key, code string
		if err := rows.Scan(&key, &code); err != nil {
			return nil, err
		}
		codes[key] = code
	}

	return codes, rows.Err()
}

// DeleteRegeneratedCode removes every replacement of a document.
func (s *CodeService) DeleteRegeneratedCode(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM regenerated_code WHERE document_id = ?", documentID)
	return err
}
