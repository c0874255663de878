package scoring

import "strings"

var hydratingKeywords = []string{"glycerin", "hyaluronic", "ceramide", "squalane", "panthenol"}

// ScoreIngredient computes a per-ingredient score from knowledge-base
// attributes, skin-type rules, and the profile's allergy list. It is a
// pure function: identical inputs always yield identical outputs.
func ScoreIngredient(name string, profile *SkinProfile) IngredientScore {
	original := strings.TrimSpace(name)
	lowered := strings.ToLower(original)

	base, known := Lookup(original)

	score := IngredientScore{
		Name:               original,
		SafetyScore:        base.SafetyScore,
		EffectivenessScore: base.EffectivenessScore,
		CompatibilityScore: 75,
		AllergyRisk:        base.AllergyRisk,
		ResearchBacking:    base.ResearchBacking,
		Innovation:         base.Innovation,
		Naturalness:        base.Naturalness,
		KnownIngredient:    known,
	}

	if profile != nil {
		score.CompatibilityScore *= multiplierFor(profile.SkinType, lowered)
		applySkinTypeHeuristics(&score, profile.SkinType, lowered)
		applyConcernHeuristics(&score, profile.SkinConcerns, lowered)

		if matchesAllergy(lowered, profile.Allergies) {
			score.AllergyRisk = 95
			score.CompatibilityScore = 10
		}
	}

	score.SafetyScore = clamp(score.SafetyScore)
	score.EffectivenessScore = clamp(score.EffectivenessScore)
	score.CompatibilityScore = clamp(score.CompatibilityScore)
	score.AllergyRisk = clamp(score.AllergyRisk)
	score.ResearchBacking = clamp(score.ResearchBacking)
	score.Innovation = clamp(score.Innovation)
	score.Naturalness = clamp(score.Naturalness)
	return score
}

// ScoreIngredients scores each name in order.
func ScoreIngredients(names []string, profile *SkinProfile) []IngredientScore {
	scores := make([]IngredientScore, 0, len(names))
	for _, name := range names {
		scores = append(scores, ScoreIngredient(name, profile))
	}
	return scores
}

func applySkinTypeHeuristics(score *IngredientScore, skinType SkinType, lowered string) {
	switch skinType {
	case SkinTypeDry:
		if containsAny(lowered, "glycerin", "hyaluronic", "ceramide") {
			score.CompatibilityScore += 10
		}
	case SkinTypeOily:
		if strings.Contains(lowered, "acid") && !strings.Contains(lowered, "hyaluronic") {
			score.CompatibilityScore += 8
		}
		if containsAny(lowered, "oil", "butter") {
			score.CompatibilityScore -= 10
		}
	case SkinTypeSensitive:
		score.CompatibilityScore -= score.AllergyRisk * 0.3
		if score.Naturalness >= 80 {
			score.CompatibilityScore += 5
		}
	}
}

func applyConcernHeuristics(score *IngredientScore, concerns []string, lowered string) {
	for _, concern := range concerns {
		c := strings.ToLower(strings.TrimSpace(concern))
		if c == "" {
			continue
		}
		if strings.Contains(c, "acne") && strings.Contains(lowered, "acid") {
			score.CompatibilityScore += 5
		}
		if containsAny(c, "dry", "dehydrat", "сухость") && containsAny(lowered, hydratingKeywords...) {
			score.CompatibilityScore += 8
		}
	}
}

// matchesAllergy reports whether any allergy string is a case-insensitive
// substring of the ingredient name or vice versa.
func matchesAllergy(loweredName string, allergies []string) bool {
	if loweredName == "" {
		return false
	}
	for _, allergy := range allergies {
		a := strings.ToLower(strings.TrimSpace(allergy))
		if a == "" {
			continue
		}
		if strings.Contains(loweredName, a) || strings.Contains(a, loweredName) {
			return true
		}
	}
	return false
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
