package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, user_id, product_name, brand, brand_reputation, brand_price_range,
       price, mode, status, ingredients, result, insight, error, created_at, updated_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, user_id, product_name, brand, brand_reputation, brand_price_range,
	price, mode, status, ingredients, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`
	ingredients, err := json.Marshal(analysis.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.ProductName,
		analysis.Brand,
		analysis.BrandReputation,
		analysis.BrandPriceRange,
		analysis.Price,
		analysis.Mode,
		analysis.Status,
		ingredients,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	query := `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, analysisID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// SetProcessing transitions the analysis to processing.
func (r *PGRepo) SetProcessing(ctx context.Context, analysisID string) error {
	const query = `
UPDATE analyses
SET status = $2, updated_at = now()
WHERE id = $1`
	return r.exec(ctx, query, analysisID, StatusProcessing)
}

// SetCompleted stores the result and insight and marks the analysis completed.
func (r *PGRepo) SetCompleted(ctx context.Context, analysisID string, result *AnalysisResult, insight string) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	const query = `
UPDATE analyses
SET status = $2, result = $3, insight = $4, error = '', updated_at = now()
WHERE id = $1`
	return r.exec(ctx, query, analysisID, StatusCompleted, payload, insight)
}

// SetFailed marks the analysis failed with an error message.
func (r *PGRepo) SetFailed(ctx context.Context, analysisID, errorMessage string) error {
	const query = `
UPDATE analyses
SET status = $2, error = $3, updated_at = now()
WHERE id = $1`
	return r.exec(ctx, query, analysisID, StatusFailed, errorMessage)
}

func (r *PGRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns analyses for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + analysisColumns + `
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := make([]Analysis, 0)
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var ingredients []byte
	var result []byte
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ProductName,
		&a.Brand,
		&a.BrandReputation,
		&a.BrandPriceRange,
		&a.Price,
		&a.Mode,
		&a.Status,
		&ingredients,
		&result,
		&a.Insight,
		&a.Error,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return Analysis{}, err
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &a.Ingredients); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal ingredients: %w", err)
		}
	}
	if len(result) > 0 {
		a.Result = &AnalysisResult{}
		if err := json.Unmarshal(result, a.Result); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal result: %w", err)
		}
	}
	return a, nil
}
