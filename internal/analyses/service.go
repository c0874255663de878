package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"glowcheck-backend/internal/insight"
	"glowcheck-backend/internal/labels"
	"glowcheck-backend/internal/profiles"
	"glowcheck-backend/internal/scoring"
	"glowcheck-backend/internal/shared/metrics"
	"glowcheck-backend/internal/shared/telemetry"
	"glowcheck-backend/internal/usage"
)

// Service contains business logic for analyses.
type Service struct {
	Repo     Repo
	Usage    *usage.Service
	Profiles *profiles.Service
	Labels   *labels.Service
	Insight  insight.Client
}

// CreateInput describes a new analysis request. Ingredients may come
// from the request body, from an uploaded label document, or both.
type CreateInput struct {
	ProductName string
	Brand       string
	BrandInfo   *scoring.BrandInfo
	Price       float64
	Mode        string
	Ingredients []string
	LabelID     string
}

// Create enqueues a new analysis and kicks off asynchronous completion.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (Analysis, error) {
	if userID == "" {
		return Analysis{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	productName := strings.TrimSpace(input.ProductName)
	if productName == "" {
		return Analysis{}, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}

	mode := strings.ToLower(strings.TrimSpace(input.Mode))
	if mode == "" {
		mode = ModeBasic
	}
	if mode != ModeBasic && mode != ModeAdvanced {
		return Analysis{}, fmt.Errorf("%w: mode must be %q or %q", ErrInvalidInput, ModeBasic, ModeAdvanced)
	}

	ingredients, err := s.resolveIngredients(ctx, userID, input)
	if err != nil {
		return Analysis{}, err
	}
	if len(ingredients) == 0 {
		return Analysis{}, fmt.Errorf("%w: at least one ingredient is required", ErrInvalidInput)
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
			return Analysis{}, err
		}
	}

	analysis := Analysis{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProductName: productName,
		Brand:       strings.TrimSpace(input.Brand),
		Price:       input.Price,
		Mode:        mode,
		Status:      StatusQueued,
		Ingredients: ingredients,
		CreatedAt:   time.Now().UTC(),
	}
	if input.BrandInfo != nil {
		analysis.BrandReputation = input.BrandInfo.Reputation
		analysis.BrandPriceRange = input.BrandInfo.PriceRange
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	go s.completeAsync(backgroundWithRequestID(ctx), analysis.ID)

	return analysis, nil
}

// Get returns an analysis owned by the user.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	if analysisID == "" {
		return Analysis{}, fmt.Errorf("%w: analysis id is required", ErrInvalidInput)
	}
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	if analysis.UserID != userID {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// List returns analyses for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) resolveIngredients(ctx context.Context, userID string, input CreateInput) ([]string, error) {
	ingredients := cleanIngredients(input.Ingredients)
	if input.LabelID == "" {
		return ingredients, nil
	}
	if s.Labels == nil {
		return nil, errors.New("label store not configured")
	}
	doc, err := s.Labels.GetByID(ctx, userID, input.LabelID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(ingredients))
	for _, name := range ingredients {
		seen[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range doc.Ingredients {
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ingredients = append(ingredients, name)
	}
	return ingredients, nil
}

func cleanIngredients(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s *Service) completeAsync(ctx context.Context, analysisID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failAnalysis(ctx, analysisID, "", fmt.Errorf("panic: %v", r), nil)
		}
	}()
	startedAt := time.Now().UTC()
	if err := s.Repo.SetProcessing(ctx, analysisID); err != nil {
		s.failAnalysis(ctx, analysisID, "", fmt.Errorf("set processing failed: %w", err), &startedAt)
		return
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, "", fmt.Errorf("analysis lookup: %w", err), &startedAt)
		return
	}
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"user_id":           analysis.UserID,
		"analysis_id":       analysis.ID,
		"mode":              analysis.Mode,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})

	profile := s.profileFor(ctx, analysis.UserID)

	result := computeResult(analysis, profile)

	insightText := s.narrate(ctx, analysis, profile, result)

	if err := s.Repo.SetCompleted(ctx, analysisID, result, insightText); err != nil {
		s.failAnalysis(ctx, analysisID, analysis.UserID, fmt.Errorf("set analysis result failed: %w", err), &startedAt)
		return
	}
	completedAt := time.Now().UTC()
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs(&startedAt, &completedAt))
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"user_id":           analysis.UserID,
		"analysis_id":       analysis.ID,
		"mode":              analysis.Mode,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       durationMs(&startedAt, &completedAt),
	})
}

// profileFor fetches the user's skin profile. A lookup failure degrades
// to unpersonalized scoring instead of failing the analysis.
func (s *Service) profileFor(ctx context.Context, userID string) *scoring.SkinProfile {
	if s.Profiles == nil {
		return nil
	}
	profile, err := s.Profiles.ScoringProfileFor(ctx, userID)
	if err != nil {
		telemetry.Warn("profile lookup failed, scoring without personalization", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil
	}
	return profile
}

// computeResult runs the deterministic scoring pass. It cannot fail.
func computeResult(analysis Analysis, profile *scoring.SkinProfile) *AnalysisResult {
	result := &AnalysisResult{Mode: analysis.Mode}
	switch analysis.Mode {
	case ModeAdvanced:
		advanced := scoring.ScoreAdvancedProduct(analysis.Ingredients, analysis.ProductName, profile, analysis.brandInfo())
		result.Advanced = &advanced
		result.Ingredients = scoring.ScoreIngredients(analysis.Ingredients, profile)
	default:
		score := scoring.ScoreProduct(analysis.Ingredients, analysis.ProductName, profile, analysis.Price)
		result.Score = &score
		capped := analysis.Ingredients
		if len(capped) > scoring.BasicIngredientCap {
			capped = capped[:scoring.BasicIngredientCap]
		}
		result.Ingredients = scoring.ScoreIngredients(capped, profile)
	}
	return result
}

// narrate asks the insight client for a prose summary of the computed
// result. Narration is best-effort: failures are logged and the
// analysis completes without an insight.
func (s *Service) narrate(ctx context.Context, analysis Analysis, profile *scoring.SkinProfile, result *AnalysisResult) string {
	if s.Insight == nil {
		return ""
	}

	input := insight.Input{ProductName: analysis.ProductName}
	if profile != nil {
		input.SkinType = string(profile.SkinType)
	}
	switch {
	case result.Advanced != nil:
		input.ProductCategory = result.Advanced.CompetitorComparison.Category
		input.Overall = result.Advanced.Overall
		input.Recommendation = result.Advanced.Recommendation
		input.RiskLevel = result.Advanced.RiskLevel
		input.Warnings = result.Advanced.Warnings
		input.StrongPoints = result.Advanced.CompetitorComparison.StrongPoints
		input.WeakPoints = result.Advanced.CompetitorComparison.WeakPoints
	case result.Score != nil:
		input.Overall = result.Score.Overall
		input.Recommendation = result.Score.Recommendation
	}

	text, err := s.Insight.Narrate(ctx, input)
	if err != nil {
		metrics.IncInsightSkipped()
		if !errors.Is(err, insight.ErrNotImplemented) {
			telemetry.Warn("insight narration failed, completing without insight", map[string]any{
				"request_id":  requestIDFromContext(ctx),
				"analysis_id": analysis.ID,
				"error":       err.Error(),
			})
		}
		return ""
	}
	return strings.TrimSpace(text)
}

func (s *Service) failAnalysis(ctx context.Context, analysisID, userID string, err error, startedAt *time.Time) {
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.SetFailed(context.Background(), analysisID, msg); updateErr != nil {
		telemetry.Error("failAnalysis: update failed", map[string]any{
			"analysis_id": analysisID,
			"error":       updateErr.Error(),
			"cause":       msg,
		})
	}
	metrics.IncAnalysisFailed()
	if startedAt != nil {
		metrics.ObserveAnalysisDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"user_id":           userID,
		"analysis_id":       analysisID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"error":             msg,
	})
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
