package labels

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("label document not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Repo interface {
	Create(ctx context.Context, doc LabelDocument) error
	GetByID(ctx context.Context, userID, docID string) (LabelDocument, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]LabelDocument, error)
}
