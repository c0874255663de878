package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	analysis := Analysis{
		ID:              "analysis-1",
		UserID:          "user-1",
		ProductName:     "Hydra Serum",
		Brand:           "GlowLab",
		BrandReputation: 82,
		BrandPriceRange: "mid-range",
		Price:           499,
		Mode:            ModeAdvanced,
		Status:          StatusQueued,
		Ingredients:     []string{"Glycerin", "Niacinamide"},
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.UserID,
			analysis.ProductName,
			analysis.Brand,
			analysis.BrandReputation,
			analysis.BrandPriceRange,
			analysis.Price,
			analysis.Mode,
			analysis.Status,
			[]byte(`["Glycerin","Niacinamide"]`),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesResult(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "product_name", "brand", "brand_reputation", "brand_price_range",
		"price", "mode", "status", "ingredients", "result", "insight", "error", "created_at", "updated_at",
	}).AddRow(
		"analysis-1", "user-1", "Hydra Serum", "", 0.0, "",
		0.0, ModeBasic, StatusCompleted,
		[]byte(`["Glycerin"]`),
		[]byte(`{"mode":"basic","score":{"overall":81,"recommendation":"good"},"ingredients":[]}`),
		"Nice pick.", "", now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("analysis-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "analysis-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected status completed, got %s", got.Status)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0] != "Glycerin" {
		t.Fatalf("expected decoded ingredients, got %v", got.Ingredients)
	}
	if got.Result == nil || got.Result.Score == nil || got.Result.Score.Overall != 81 {
		t.Fatalf("expected decoded result, got %#v", got.Result)
	}
	if got.Insight != "Nice pick." {
		t.Fatalf("expected insight, got %q", got.Insight)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoSetCompletedMarshalsResult(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE analyses").
		WithArgs("analysis-1", StatusCompleted, sqlmock.AnyArg(), "all good").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result := &AnalysisResult{Mode: ModeBasic}
	if err := repo.SetCompleted(context.Background(), "analysis-1", result, "all good"); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSetFailedMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE analyses").
		WithArgs("missing", StatusFailed, "boom").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetFailed(context.Background(), "missing", "boom"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
