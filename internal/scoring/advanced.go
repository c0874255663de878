package scoring

import "strings"

// categoryRule matches ingredient names against a fixed keyword list and
// folds the matched ingredients' effectiveness into a category score.
type categoryRule struct {
	keywords []string
	divisor  float64
}

var categoryRules = map[string]categoryRule{
	"hydration":  {keywords: []string{"glycerin", "hyaluronic", "ceramide", "squalane", "urea", "panthenol"}, divisor: 3},
	"antiAging":  {keywords: []string{"retinol", "vitamin c", "ascorbic", "peptide", "niacinamide", "bakuchiol", "collagen"}, divisor: 3},
	"protection": {keywords: []string{"zinc oxide", "titanium dioxide", "antioxidant", "tocopherol", "vitamin e", "green tea", "ferulic"}, divisor: 2},
	"gentleness": {keywords: []string{"aloe", "chamomile", "bisabolol", "centella", "allantoin", "oat"}, divisor: 2},
	"absorption": {keywords: []string{"squalane", "dimethicone", "cyclopentasiloxane", "isododecane", "silica"}, divisor: 3},
	"longevity":  {keywords: []string{"dimethicone", "wax", "petrolatum", "silicone", "film"}, divisor: 2},
}

// ScoreAdvancedProduct computes the extended whole-product score. Unlike
// the basic model it scores every supplied ingredient, carries innovation
// and naturalness per ingredient, and derives category sub-scores plus
// rule-based advice text.
func ScoreAdvancedProduct(ingredients []string, productName string, profile *SkinProfile, brand *BrandInfo) AdvancedProductScore {
	if len(ingredients) == 0 {
		return AdvancedProductScore{
			Recommendation: TierPoor,
			RiskLevel:      RiskLow,
			CompetitorComparison: CompetitorComparison{
				Category: inferProductCategory(productName),
			},
		}
	}

	scores := make([]IngredientScore, 0, len(ingredients))
	for _, name := range ingredients {
		scores = append(scores, ScoreIngredient(name, profile))
	}

	var sumSafety, sumEff, sumCompat, sumResearch, sumInnovation, maxAllergy float64
	for _, s := range scores {
		sumSafety += s.SafetyScore
		sumEff += s.EffectivenessScore
		sumCompat += s.CompatibilityScore
		sumResearch += s.ResearchBacking
		sumInnovation += s.Innovation
		if s.AllergyRisk > maxAllergy {
			maxAllergy = s.AllergyRisk
		}
	}

	n := float64(len(scores))
	avgSafety := sumSafety / n
	avgEff := sumEff / n
	avgCompat := sumCompat / n
	avgResearch := sumResearch / n
	avgInnovation := sumInnovation / n

	value := brandValue(brand)

	overall := 0.25*avgSafety + 0.25*avgEff + 0.20*avgCompat + 0.15*avgInnovation + 0.15*value

	categories := Categories{
		Hydration:  categoryScore("hydration", scores),
		AntiAging:  categoryScore("antiAging", scores),
		Protection: categoryScore("protection", scores),
		Gentleness: categoryScore("gentleness", scores),
		Absorption: categoryScore("absorption", scores),
		Longevity:  categoryScore("longevity", scores),
	}

	tier := recommendationFor(overall)
	confidence := 85 + (avgResearch-70)*0.3

	adviceInput := adviceInput{
		Profile:     profile,
		Scores:      scores,
		MaxAllergy:  maxAllergy,
		Tier:        tier,
		Categories:  categories,
		ProductName: productName,
	}

	return AdvancedProductScore{
		Overall:            roundScore(overall),
		Safety:             roundScore(avgSafety),
		Effectiveness:      roundScore(avgEff),
		Suitability:        roundScore(avgCompat),
		Innovation:         roundScore(avgInnovation),
		ValueForMoney:      roundScore(value),
		Categories:         categories,
		RiskLevel:          riskLevelFor(maxAllergy),
		Recommendation:     tier,
		ConfidenceLevel:    roundScore(confidence),
		PersonalizedAdvice: generatePersonalizedAdvice(adviceInput),
		Warnings:           generateWarnings(adviceInput),
		Alternatives:       generateAlternatives(adviceInput),
		CompetitorComparison: CompetitorComparison{
			BetterThan:   roundScore(overall * 0.8),
			Category:     inferProductCategory(productName),
			StrongPoints: strongPoints(categories),
			WeakPoints:   weakPoints(categories),
		},
	}
}

func categoryScore(name string, scores []IngredientScore) int {
	rule := categoryRules[name]
	sum := 0.0
	for _, s := range scores {
		if containsAny(strings.ToLower(s.Name), rule.keywords...) {
			sum += s.EffectivenessScore
		}
	}
	return roundScore(50 + sum/rule.divisor)
}

// brandValue derives the value score from brand metadata. Without brand
// info the value is neutral.
func brandValue(brand *BrandInfo) float64 {
	if brand == nil {
		return 70
	}
	base := 70.0
	switch strings.ToLower(strings.TrimSpace(brand.PriceRange)) {
	case "budget":
		base = 80
	case "mid-range":
		base = 75
	case "premium":
		base = 65
	case "luxury":
		base = 55
	}
	return clamp(base + (brand.Reputation-50)*0.2)
}

func inferProductCategory(productName string) string {
	lowered := strings.ToLower(productName)
	switch {
	case strings.Contains(lowered, "serum"):
		return "serum"
	case strings.Contains(lowered, "cream"):
		return "cream"
	case strings.Contains(lowered, "cleanser"):
		return "cleanser"
	case strings.Contains(lowered, "mask"):
		return "mask"
	case strings.Contains(lowered, "sunscreen"), strings.Contains(lowered, "spf"):
		return "sunscreen"
	default:
		return "skincare"
	}
}

func strongPoints(c Categories) []string {
	return categoryPoints(c, func(v int) bool { return v >= 75 })
}

func weakPoints(c Categories) []string {
	return categoryPoints(c, func(v int) bool { return v <= 50 })
}

func categoryPoints(c Categories, match func(int) bool) []string {
	out := make([]string, 0, 6)
	ordered := []struct {
		label string
		value int
	}{
		{"hydration", c.Hydration},
		{"anti-aging", c.AntiAging},
		{"protection", c.Protection},
		{"gentleness", c.Gentleness},
		{"absorption", c.Absorption},
		{"longevity", c.Longevity},
	}
	for _, entry := range ordered {
		if match(entry.value) {
			out = append(out, entry.label)
		}
	}
	return out
}
