package labels

import (
	"context"
	"errors"
	"strings"
	"testing"

	"glowcheck-backend/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryRepo(), local.New(t.TempDir()))
}

func TestServiceUploadParsesPlainTextLabel(t *testing.T) {
	svc := newTestService(t)

	body := "Ingredients: Aqua, Glycerin, Niacinamide"
	doc, err := svc.Upload(context.Background(), "user-1", "label.txt", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected assigned document id")
	}
	if len(doc.Ingredients) != 3 {
		t.Fatalf("expected 3 parsed ingredients, got %v", doc.Ingredients)
	}
	if doc.SizeBytes != int64(len(body)) {
		t.Fatalf("expected size %d, got %d", len(body), doc.SizeBytes)
	}
}

func TestServiceUploadKeepsDocumentOnUnparseableText(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.Upload(context.Background(), "user-1", "note.txt", strings.NewReader("no list here"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if len(doc.Ingredients) != 0 {
		t.Fatalf("expected empty ingredient list, got %v", doc.Ingredients)
	}
}

func TestServiceUploadRejectsEmptyFile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upload(context.Background(), "user-1", "empty.txt", strings.NewReader(""))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceUploadRejectsMissingUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upload(context.Background(), "", "label.txt", strings.NewReader("Ingredients: Water"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceGetByIDScopedToOwner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "user-1", "label.txt", strings.NewReader("Ingredients: Water, Glycerin"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if _, err := svc.GetByID(ctx, "user-1", doc.ID); err != nil {
		t.Fatalf("owner GetByID: %v", err)
	}
	if _, err := svc.GetByID(ctx, "someone-else", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
}

func TestServiceListByUserNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := svc.Upload(ctx, "user-1", name, strings.NewReader("Ingredients: Water, Glycerin")); err != nil {
			t.Fatalf("Upload %s: %v", name, err)
		}
	}

	docs, err := svc.ListByUser(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
}
