package labels

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"glowcheck-backend/internal/shared/storage/object"
	"glowcheck-backend/internal/shared/telemetry"
)

const maxLabelSize = 10 << 20 // 10MB

type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// Upload stores a label file, extracts its ingredient list, and persists
// the document record. Extraction failures are not fatal: the document
// is kept with an empty list so the user can retype ingredients by hand.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (LabelDocument, error) {
	if s == nil || s.Repo == nil || s.Store == nil {
		return LabelDocument{}, errors.New("labels service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return LabelDocument{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(fileName) == "" {
		return LabelDocument{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxLabelSize+1))
	if err != nil {
		return LabelDocument{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return LabelDocument{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if len(data) > maxLabelSize {
		return LabelDocument{}, fmt.Errorf("%w: file exceeds 10MB", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return LabelDocument{}, fmt.Errorf("store label: %w", err)
	}

	ingredients, err := ExtractIngredients(ctx, data, mimeType)
	if err != nil {
		telemetry.Warn("label extraction failed", map[string]any{
			"fileName": fileName,
			"error":    err.Error(),
		})
		ingredients = []string{}
	}

	doc := LabelDocument{
		ID:          uuid.NewString(),
		UserID:      userID,
		FileName:    fileName,
		StorageKey:  storageKey,
		SizeBytes:   size,
		MimeType:    mimeType,
		Ingredients: ingredients,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return LabelDocument{}, fmt.Errorf("persist label document: %w", err)
	}
	return doc, nil
}

func (s *Service) GetByID(ctx context.Context, userID, docID string) (LabelDocument, error) {
	if s == nil || s.Repo == nil {
		return LabelDocument{}, errors.New("labels service not configured")
	}
	if strings.TrimSpace(docID) == "" {
		return LabelDocument{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, docID)
}

func (s *Service) ListByUser(ctx context.Context, userID string, limit int) ([]LabelDocument, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("labels service not configured")
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}
