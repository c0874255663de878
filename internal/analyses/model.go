package analyses

import (
	"time"

	"glowcheck-backend/internal/scoring"
)

const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Analysis represents a product analysis job.
type Analysis struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	ProductName     string          `json:"productName"`
	Brand           string          `json:"brand,omitempty"`
	BrandReputation float64         `json:"brandReputation,omitempty"`
	BrandPriceRange string          `json:"brandPriceRange,omitempty"`
	Price           float64         `json:"price,omitempty"`
	Mode            string          `json:"mode"`
	Status          string          `json:"status"`
	Ingredients     []string        `json:"ingredients"`
	Result          *AnalysisResult `json:"result,omitempty"`
	Insight         string          `json:"insight,omitempty"`
	Error           string          `json:"error,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// AnalysisResult is the computed scoring payload. Exactly one of Score
// and Advanced is set, matching the analysis mode.
type AnalysisResult struct {
	Mode        string                        `json:"mode"`
	Score       *scoring.ProductScore         `json:"score,omitempty"`
	Advanced    *scoring.AdvancedProductScore `json:"advanced,omitempty"`
	Ingredients []scoring.IngredientScore     `json:"ingredients"`
}

func (a Analysis) brandInfo() *scoring.BrandInfo {
	if a.BrandReputation == 0 && a.BrandPriceRange == "" {
		return nil
	}
	return &scoring.BrandInfo{
		Reputation: a.BrandReputation,
		PriceRange: a.BrandPriceRange,
	}
}
