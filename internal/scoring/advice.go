package scoring

import (
	"fmt"
	"strings"
)

// adviceInput is the normalized data the text generators key on.
type adviceInput struct {
	Profile     *SkinProfile
	Scores      []IngredientScore
	MaxAllergy  float64
	Tier        string
	Categories  Categories
	ProductName string
}

func (in adviceInput) skinType() SkinType {
	if in.Profile == nil {
		return ""
	}
	return in.Profile.SkinType
}

func (in adviceInput) containsIngredient(keywords ...string) bool {
	for _, s := range in.Scores {
		if containsAny(strings.ToLower(s.Name), keywords...) {
			return true
		}
	}
	return false
}

func (in adviceInput) allergyMatches() []string {
	if in.Profile == nil {
		return nil
	}
	out := make([]string, 0, 2)
	for _, s := range in.Scores {
		if matchesAllergy(strings.ToLower(s.Name), in.Profile.Allergies) {
			out = append(out, s.Name)
		}
	}
	return out
}

// adviceRule maps a trigger condition to a fixed message. Rules run in
// order; every matching rule contributes its message.
type adviceRule struct {
	when    func(adviceInput) bool
	message string
}

var adviceRules = []adviceRule{
	{
		when:    func(in adviceInput) bool { return in.skinType() == SkinTypeSensitive },
		message: "Patch test this product on a small area before applying it to your face.",
	},
	{
		when: func(in adviceInput) bool {
			return in.skinType() == SkinTypeDry && in.Categories.Hydration <= 60
		},
		message: "Layer a hydrating serum underneath to compensate for the light hydration profile.",
	},
	{
		when: func(in adviceInput) bool {
			return in.skinType() == SkinTypeOily && in.containsIngredient("oil", "butter", "petrolatum")
		},
		message: "This formula contains rich occlusives; use sparingly on oil-prone areas.",
	},
	{
		when:    func(in adviceInput) bool { return in.containsIngredient("retinol", "retinal") },
		message: "Use retinoids in the evening and wear sunscreen during the day.",
	},
	{
		when: func(in adviceInput) bool {
			return in.containsIngredient("glycolic", "salicylic", "lactic") && !in.containsIngredient("retinol")
		},
		message: "Introduce exfoliating acids gradually, starting two to three times per week.",
	},
	{
		when:    func(in adviceInput) bool { return in.Tier == TierExcellent || in.Tier == TierGood },
		message: "This product aligns well with your profile and can anchor your routine.",
	},
}

// warningRule mirrors adviceRule but produces cautionary messages; the
// format callback lets a rule name the offending ingredients.
type warningRule struct {
	when   func(adviceInput) bool
	format func(adviceInput) string
}

var warningRules = []warningRule{
	{
		when: func(in adviceInput) bool { return len(in.allergyMatches()) > 0 },
		format: func(in adviceInput) string {
			return fmt.Sprintf("Contains %s, which matches an allergy in your profile.", strings.Join(in.allergyMatches(), ", "))
		},
	},
	{
		when:   func(in adviceInput) bool { return in.MaxAllergy > 25 && len(in.allergyMatches()) == 0 },
		format: func(adviceInput) string { return "One or more ingredients carry elevated irritation potential." },
	},
	{
		when: func(in adviceInput) bool {
			return in.skinType() == SkinTypeSensitive && in.containsIngredient("fragrance", "parfum")
		},
		format: func(adviceInput) string { return "Fragrance is a common trigger for sensitive skin." },
	},
	{
		when: func(in adviceInput) bool {
			return in.skinType() == SkinTypeSensitive && in.containsIngredient("retinol", "glycolic", "benzoyl peroxide")
		},
		format: func(adviceInput) string { return "Strong actives in this formula may be harsh for sensitive skin." },
	},
	{
		when:   func(in adviceInput) bool { return in.containsIngredient("alcohol denat") },
		format: func(adviceInput) string { return "Denatured alcohol can be drying with frequent use." },
	},
}

var alternativeRules = []adviceRule{
	{
		when:    func(in adviceInput) bool { return in.Tier == TierPoor },
		message: "Consider a simpler formula with fewer irritants for your profile.",
	},
	{
		when:    func(in adviceInput) bool { return in.containsIngredient("fragrance", "parfum") },
		message: "Look for a fragrance-free version of this type of product.",
	},
	{
		when: func(in adviceInput) bool {
			return in.containsIngredient("retinol") && in.skinType() == SkinTypeSensitive
		},
		message: "Bakuchiol offers a gentler alternative to retinol.",
	},
	{
		when: func(in adviceInput) bool {
			return in.containsIngredient("sodium lauryl sulfate")
		},
		message: "Sulfate-free cleansers with cocamidopropyl betaine are milder on the skin barrier.",
	},
}

func generatePersonalizedAdvice(in adviceInput) []string {
	out := make([]string, 0, len(adviceRules))
	for _, rule := range adviceRules {
		if rule.when(in) {
			out = append(out, rule.message)
		}
	}
	return out
}

func generateWarnings(in adviceInput) []string {
	out := make([]string, 0, len(warningRules))
	for _, rule := range warningRules {
		if rule.when(in) {
			out = append(out, rule.format(in))
		}
	}
	return out
}

func generateAlternatives(in adviceInput) []string {
	out := make([]string, 0, len(alternativeRules))
	for _, rule := range alternativeRules {
		if rule.when(in) {
			out = append(out, rule.message)
		}
	}
	return out
}
