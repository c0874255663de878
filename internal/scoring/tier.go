package scoring

// Recommendation tiers.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierFair      = "fair"
	TierPoor      = "poor"
)

// Risk levels derived from the maximum allergy risk across a product.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// recommendationFor classifies an unrounded overall score into a tier.
func recommendationFor(overall float64) string {
	switch {
	case overall >= 85:
		return TierExcellent
	case overall >= 70:
		return TierGood
	case overall >= 55:
		return TierFair
	default:
		return TierPoor
	}
}

// riskLevelFor classifies the maximum per-ingredient allergy risk.
func riskLevelFor(maxAllergyRisk float64) string {
	switch {
	case maxAllergyRisk <= 10:
		return RiskLow
	case maxAllergyRisk <= 25:
		return RiskMedium
	default:
		return RiskHigh
	}
}
