package scoring

import (
	"math"
	"strings"
)

// BasicIngredientCap bounds how many ingredients the basic model scores.
// Confidence and averaging semantics depend on this exact bound.
const BasicIngredientCap = 10

var modernIngredientKeywords = []string{"niacinamide", "peptides", "bakuchiol", "azelaic acid"}

// ScoreProduct aggregates per-ingredient scores into the basic
// whole-product score. Rounding to integers happens only at the end.
func ScoreProduct(ingredients []string, productName string, profile *SkinProfile, price float64) ProductScore {
	if len(ingredients) == 0 {
		return ProductScore{Recommendation: TierPoor}
	}

	capped := ingredients
	if len(capped) > BasicIngredientCap {
		capped = capped[:BasicIngredientCap]
	}

	scores := ScoreIngredients(capped, profile)

	var sumSafety, sumEff, sumCompat, sumResearch, maxAllergy float64
	knownHits := 0
	activeCount := 0
	for _, s := range scores {
		sumSafety += s.SafetyScore
		sumEff += s.EffectivenessScore
		sumCompat += s.CompatibilityScore
		sumResearch += s.ResearchBacking
		if s.AllergyRisk > maxAllergy {
			maxAllergy = s.AllergyRisk
		}
		if s.KnownIngredient {
			knownHits++
		}
		if s.EffectivenessScore > 80 {
			activeCount++
		}
	}

	n := float64(len(scores))
	avgSafety := sumSafety / n
	avgEff := sumEff / n
	avgCompat := sumCompat / n
	avgResearch := sumResearch / n

	quality := 0.4*avgSafety + 0.4*avgEff + 0.2*avgResearch

	activeRatio := float64(activeCount) / n
	balance := 100 - math.Abs(activeRatio-0.3)*200
	if balance < 0 {
		balance = 0
	}

	allergyComponent := 100 - maxAllergy

	overall := 0.30*quality + 0.20*balance + 0.25*avgCompat + 0.15*allergyComponent + 0.10*avgResearch

	innovation := 60.0
	for _, name := range capped {
		if containsAny(strings.ToLower(name), modernIngredientKeywords...) {
			innovation = 80
			break
		}
	}

	value := valueForMoney(price, overall)

	confidence := 100 * float64(knownHits) / n

	return ProductScore{
		Overall:       roundScore(overall),
		Safety:        roundScore(avgSafety),
		Effectiveness: roundScore(avgEff),
		Suitability:   roundScore(avgCompat),
		Innovation:    roundScore(innovation),
		ValueForMoney: roundScore(value),
		Breakdown: Breakdown{
			IngredientQuality:  roundScore(quality),
			FormulationBalance: roundScore(balance),
			SkinTypeMatch:      roundScore(avgCompat),
			AllergyRisk:        roundScore(allergyComponent),
			ScientificEvidence: roundScore(avgResearch),
		},
		Recommendation:  recommendationFor(overall),
		ConfidenceLevel: roundScore(confidence),
	}
}

// valueForMoney evaluates price brackets as an ordered chain; the first
// matching branch wins. A zero price means no price was supplied.
func valueForMoney(price, overall float64) float64 {
	if price <= 0 {
		return 70
	}
	switch {
	case price < 500 && overall > 70:
		return 90
	case price < 1000 && overall > 75:
		return 80
	case price > 2000 && overall < 80:
		return 50
	default:
		return 70
	}
}

func roundScore(v float64) int {
	return int(math.Round(clamp(v)))
}
