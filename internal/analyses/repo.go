package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	SetProcessing(ctx context.Context, analysisID string) error
	SetCompleted(ctx context.Context, analysisID string, result *AnalysisResult, insight string) error
	SetFailed(ctx context.Context, analysisID, errorMessage string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error)
}
