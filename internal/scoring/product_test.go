package scoring

import (
	"fmt"
	"testing"
)

func TestScoreProductEmptyListReturnsZeroScore(t *testing.T) {
	score := ScoreProduct(nil, "Empty Product", nil, 0)
	if score.Overall != 0 {
		t.Fatalf("expected zero overall, got %d", score.Overall)
	}
	if score.ConfidenceLevel != 0 {
		t.Fatalf("expected zero confidence, got %d", score.ConfidenceLevel)
	}
	if score.Recommendation != TierPoor {
		t.Fatalf("expected poor recommendation, got %q", score.Recommendation)
	}
}

func TestScoreProductCapsAtTenIngredients(t *testing.T) {
	ten := []string{
		"Water", "Glycerin", "Niacinamide", "Hyaluronic Acid", "Squalane",
		"Panthenol", "Ceramides", "Tocopherol", "Allantoin", "Dimethicone",
	}
	fifteen := append(append([]string{}, ten...),
		"Fragrance", "Alcohol Denat", "Retinol", "Shea Butter", "Urea")

	profile := &SkinProfile{SkinType: SkinTypeDry}
	if got, want := ScoreProduct(fifteen, "Cap Test", profile, 800), ScoreProduct(ten, "Cap Test", profile, 800); got != want {
		t.Fatalf("expected identical output for capped list:\n got %+v\nwant %+v", got, want)
	}
}

func TestScoreProductIdempotent(t *testing.T) {
	ingredients := []string{"Glycerin", "Niacinamide", "Fragrance"}
	profile := &SkinProfile{SkinType: SkinTypeSensitive, Allergies: []string{"fragrance"}}
	first := ScoreProduct(ingredients, "Test Serum", profile, 499)
	second := ScoreProduct(ingredients, "Test Serum", profile, 499)
	if first != second {
		t.Fatalf("expected identical results")
	}
}

func TestScoreProductAllergyMatchForcesLowAllergyBreakdown(t *testing.T) {
	profile := &SkinProfile{
		SkinType:     SkinTypeSensitive,
		SkinConcerns: []string{},
		Allergies:    []string{"fragrance"},
		Preferences:  []string{},
	}
	score := ScoreProduct([]string{"Glycerin", "Niacinamide", "Fragrance"}, "Test Serum", profile, 0)

	if score.Breakdown.AllergyRisk > 10 {
		t.Fatalf("expected allergy breakdown near 0, got %d", score.Breakdown.AllergyRisk)
	}
	if score.Recommendation != TierPoor && score.Recommendation != TierFair {
		t.Fatalf("expected poor or fair recommendation, got %q", score.Recommendation)
	}
}

func TestScoreProductDrySkinOutscoresOilyForHydrators(t *testing.T) {
	ingredients := []string{"Hyaluronic Acid", "Glycerin", "Ceramides"}
	dry := &SkinProfile{SkinType: SkinTypeDry, SkinConcerns: []string{"Сухость"}}
	oily := &SkinProfile{SkinType: SkinTypeOily, SkinConcerns: []string{"Сухость"}}

	dryScore := ScoreProduct(ingredients, "Dry Skin Cream", dry, 0)
	oilyScore := ScoreProduct(ingredients, "Dry Skin Cream", oily, 0)

	if dryScore.Suitability <= oilyScore.Suitability {
		t.Fatalf("expected dry suitability %d > oily %d", dryScore.Suitability, oilyScore.Suitability)
	}
	if dryScore.Breakdown.SkinTypeMatch <= oilyScore.Breakdown.SkinTypeMatch {
		t.Fatalf("expected dry skinTypeMatch %d > oily %d", dryScore.Breakdown.SkinTypeMatch, oilyScore.Breakdown.SkinTypeMatch)
	}
}

func TestScoreProductConfidenceIsKnowledgeBaseHitRate(t *testing.T) {
	score := ScoreProduct([]string{"Glycerin", "Completely Unknown Compound"}, "Mix", nil, 0)
	if score.ConfidenceLevel != 50 {
		t.Fatalf("expected confidence 50, got %d", score.ConfidenceLevel)
	}

	score = ScoreProduct([]string{"Glycerin", "Niacinamide"}, "Mix", nil, 0)
	if score.ConfidenceLevel != 100 {
		t.Fatalf("expected confidence 100, got %d", score.ConfidenceLevel)
	}
}

func TestScoreProductInnovationKeywords(t *testing.T) {
	with := ScoreProduct([]string{"Water", "Niacinamide"}, "Serum", nil, 0)
	if with.Innovation != 80 {
		t.Fatalf("expected innovation 80 with niacinamide, got %d", with.Innovation)
	}
	without := ScoreProduct([]string{"Water", "Glycerin"}, "Serum", nil, 0)
	if without.Innovation != 60 {
		t.Fatalf("expected innovation 60, got %d", without.Innovation)
	}
}

func TestScoreProductValueForMoneyBranches(t *testing.T) {
	// High-overall formulation for the cheap-and-good branch.
	strong := []string{"Glycerin", "Hyaluronic Acid", "Ceramides"}
	dry := &SkinProfile{SkinType: SkinTypeDry}

	if got := ScoreProduct(strong, "Cream", dry, 400); got.ValueForMoney != 90 {
		t.Fatalf("expected value 90 for cheap high scorer, got %d", got.ValueForMoney)
	}

	// Mediocre unknown formulation for the overpriced branch.
	weak := []string{"Mystery A", "Mystery B"}
	if got := ScoreProduct(weak, "Cream", nil, 2500); got.ValueForMoney != 50 {
		t.Fatalf("expected value 50 for expensive low scorer, got %d", got.ValueForMoney)
	}
	if got := ScoreProduct(weak, "Cream", nil, 400); got.ValueForMoney != 70 {
		t.Fatalf("expected neutral value 70, got %d", got.ValueForMoney)
	}
	if got := ScoreProduct(weak, "Cream", nil, 0); got.ValueForMoney != 70 {
		t.Fatalf("expected neutral value 70 without price, got %d", got.ValueForMoney)
	}
}

func TestRecommendationTierBoundaries(t *testing.T) {
	cases := []struct {
		overall float64
		want    string
	}{
		{85, TierExcellent},
		{84.999, TierGood},
		{70, TierGood},
		{69.999, TierFair},
		{55, TierFair},
		{54.999, TierPoor},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%.3f", tc.overall), func(t *testing.T) {
			if got := recommendationFor(tc.overall); got != tc.want {
				t.Fatalf("recommendationFor(%v) = %q, want %q", tc.overall, got, tc.want)
			}
		})
	}
}

func TestScoreProductAllOutputsInRange(t *testing.T) {
	profiles := []*SkinProfile{
		nil,
		{SkinType: SkinTypeSensitive, Allergies: []string{"fragrance", "paraben"}},
		{SkinType: SkinTypeDry, SkinConcerns: []string{"dryness"}},
	}
	lists := [][]string{
		{"Water"},
		{"Fragrance", "Alcohol Denat", "Methylparaben"},
		{"Glycerin", "Hyaluronic Acid", "Niacinamide", "Retinol", "Squalane"},
	}
	for _, profile := range profiles {
		for _, list := range lists {
			score := ScoreProduct(list, "Range Check", profile, 1500)
			values := []int{
				score.Overall, score.Safety, score.Effectiveness, score.Suitability,
				score.Innovation, score.ValueForMoney, score.ConfidenceLevel,
				score.Breakdown.IngredientQuality, score.Breakdown.FormulationBalance,
				score.Breakdown.SkinTypeMatch, score.Breakdown.AllergyRisk,
				score.Breakdown.ScientificEvidence,
			}
			for _, v := range values {
				if v < 0 || v > 100 {
					t.Fatalf("score out of range for %v: %d", list, v)
				}
			}
		}
	}
}
