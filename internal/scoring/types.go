package scoring

// SkinType is the fixed set of supported skin types.
type SkinType string

const (
	SkinTypeOily        SkinType = "oily"
	SkinTypeDry         SkinType = "dry"
	SkinTypeCombination SkinType = "combination"
	SkinTypeSensitive   SkinType = "sensitive"
	SkinTypeNormal      SkinType = "normal"
)

// ParseSkinType validates a raw skin type string.
func ParseSkinType(raw string) (SkinType, bool) {
	switch SkinType(raw) {
	case SkinTypeOily, SkinTypeDry, SkinTypeCombination, SkinTypeSensitive, SkinTypeNormal:
		return SkinType(raw), true
	}
	return "", false
}

// SkinProfile is the read-only user context used to personalize scores.
type SkinProfile struct {
	SkinType     SkinType `json:"skinType"`
	SkinConcerns []string `json:"skinConcerns"`
	Allergies    []string `json:"allergies"`
	Preferences  []string `json:"preferences"`
}

// IngredientScore is the per-ingredient result of a scoring pass.
// All numeric fields are clamped to [0,100].
type IngredientScore struct {
	Name               string  `json:"name"`
	SafetyScore        float64 `json:"safetyScore"`
	EffectivenessScore float64 `json:"effectivenessScore"`
	CompatibilityScore float64 `json:"compatibilityScore"`
	AllergyRisk        float64 `json:"allergyRisk"`
	ResearchBacking    float64 `json:"researchBacking"`
	Innovation         float64 `json:"innovation"`
	Naturalness        float64 `json:"naturalness"`
	KnownIngredient    bool    `json:"knownIngredient"`
}

// Breakdown holds the intermediate components of the basic overall score.
type Breakdown struct {
	IngredientQuality  int `json:"ingredientQuality"`
	FormulationBalance int `json:"formulationBalance"`
	SkinTypeMatch      int `json:"skinTypeMatch"`
	AllergyRisk        int `json:"allergyRisk"`
	ScientificEvidence int `json:"scientificEvidence"`
}

// ProductScore is the basic whole-product result.
type ProductScore struct {
	Overall         int       `json:"overall"`
	Safety          int       `json:"safety"`
	Effectiveness   int       `json:"effectiveness"`
	Suitability     int       `json:"suitability"`
	Innovation      int       `json:"innovation"`
	ValueForMoney   int       `json:"valueForMoney"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendation  string    `json:"recommendation"`
	ConfidenceLevel int       `json:"confidenceLevel"`
}

// Categories are the advanced model's per-category sub-scores.
type Categories struct {
	Hydration  int `json:"hydration"`
	AntiAging  int `json:"antiAging"`
	Protection int `json:"protection"`
	Gentleness int `json:"gentleness"`
	Absorption int `json:"absorption"`
	Longevity  int `json:"longevity"`
}

// CompetitorComparison is a placeholder comparison derived from the
// product's own score rather than real competitor data.
type CompetitorComparison struct {
	BetterThan   int      `json:"betterThan"`
	Category     string   `json:"category"`
	StrongPoints []string `json:"strongPoints"`
	WeakPoints   []string `json:"weakPoints"`
}

// BrandInfo is optional brand metadata used by the advanced value model.
type BrandInfo struct {
	Reputation float64 `json:"reputation"`
	PriceRange string  `json:"priceRange"`
}

// AdvancedProductScore is the extended whole-product result.
type AdvancedProductScore struct {
	Overall              int                  `json:"overall"`
	Safety               int                  `json:"safety"`
	Effectiveness        int                  `json:"effectiveness"`
	Suitability          int                  `json:"suitability"`
	Innovation           int                  `json:"innovation"`
	ValueForMoney        int                  `json:"valueForMoney"`
	Categories           Categories           `json:"categories"`
	RiskLevel            string               `json:"riskLevel"`
	Recommendation       string               `json:"recommendation"`
	ConfidenceLevel      int                  `json:"confidenceLevel"`
	PersonalizedAdvice   []string             `json:"personalizedAdvice"`
	Warnings             []string             `json:"warnings"`
	Alternatives         []string             `json:"alternatives"`
	CompetitorComparison CompetitorComparison `json:"competitorComparison"`
}
