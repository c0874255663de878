package labels

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, doc LabelDocument) error {
	ingredients, err := json.Marshal(doc.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	const query = `
INSERT INTO label_documents (id, user_id, file_name, storage_key, size_bytes, mime_type, ingredients, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err = r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		doc.StorageKey,
		doc.SizeBytes,
		doc.MimeType,
		ingredients,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, docID string) (LabelDocument, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, size_bytes, mime_type, ingredients, created_at
FROM label_documents
WHERE id = $1 AND user_id = $2
LIMIT 1`
	doc, err := scanDoc(r.DB.QueryRowContext(ctx, query, docID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LabelDocument{}, ErrNotFound
		}
		return LabelDocument{}, err
	}
	return doc, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]LabelDocument, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, user_id, file_name, storage_key, size_bytes, mime_type, ingredients, created_at
FROM label_documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LabelDocument, 0, limit)
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoc(row rowScanner) (LabelDocument, error) {
	var doc LabelDocument
	var ingredients []byte
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileName,
		&doc.StorageKey,
		&doc.SizeBytes,
		&doc.MimeType,
		&ingredients,
		&doc.CreatedAt,
	)
	if err != nil {
		return LabelDocument{}, err
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &doc.Ingredients); err != nil {
			return LabelDocument{}, fmt.Errorf("unmarshal ingredients: %w", err)
		}
	}
	if doc.Ingredients == nil {
		doc.Ingredients = []string{}
	}
	return doc, nil
}
