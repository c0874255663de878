package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertPersistsListsAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO skin_profiles").
		WithArgs(
			sqlmock.AnyArg(), // id
			"user-1",
			"dry",
			[]byte(`["dryness","redness"]`),
			[]byte(`["fragrance"]`),
			[]byte(`[]`),
			34,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("profile-1", now, now))

	saved, err := repo.Upsert(context.Background(), Profile{
		UserID:    "user-1",
		SkinType:  "dry",
		Concerns:  []string{"dryness", "redness"},
		Allergies: []string{"fragrance"},
		Age:       34,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if saved.ID != "profile-1" {
		t.Fatalf("expected returned id, got %q", saved.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserDecodesLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "skin_type", "concerns", "allergies", "preferences", "age", "created_at", "updated_at",
	}).AddRow("profile-1", "user-1", "sensitive", []byte(`["acne"]`), []byte(`["parfum"]`), []byte(`["vegan"]`), 28, now, now)

	mock.ExpectQuery("SELECT id, user_id, skin_type").
		WithArgs("user-1").
		WillReturnRows(rows)

	profile, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if profile.SkinType != "sensitive" {
		t.Fatalf("expected sensitive, got %q", profile.SkinType)
	}
	if len(profile.Concerns) != 1 || profile.Concerns[0] != "acne" {
		t.Fatalf("unexpected concerns: %v", profile.Concerns)
	}
	if len(profile.Allergies) != 1 || profile.Allergies[0] != "parfum" {
		t.Fatalf("unexpected allergies: %v", profile.Allergies)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, user_id, skin_type").
		WithArgs("user-x").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "skin_type", "concerns", "allergies", "preferences", "age", "created_at", "updated_at",
		}))

	_, err = repo.GetByUser(context.Background(), "user-x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
