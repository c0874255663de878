package scoring

import "strings"

// IngredientRecord is a knowledge-base entry with baseline attributes.
// All attributes are in [0,100].
type IngredientRecord struct {
	SafetyScore        float64
	EffectivenessScore float64
	AllergyRisk        float64
	ResearchBacking    float64
	Naturalness        float64
	Innovation         float64
}

// Defaults applied to ingredients the knowledge base does not recognize.
const (
	defaultSafety        = 72
	defaultEffectiveness = 65
	defaultAllergyRisk   = 10
	defaultResearch      = 60
	defaultNaturalness   = 50
	defaultInnovation    = 50
)

func defaultRecord() IngredientRecord {
	return IngredientRecord{
		SafetyScore:        defaultSafety,
		EffectivenessScore: defaultEffectiveness,
		AllergyRisk:        defaultAllergyRisk,
		ResearchBacking:    defaultResearch,
		Naturalness:        defaultNaturalness,
		Innovation:         defaultInnovation,
	}
}

// Lookup returns the knowledge-base record for an ingredient name,
// matching case-insensitively on the trimmed name. Unknown names get a
// fully-defaulted record; the second return reports whether the name
// was a verbatim hit.
func Lookup(name string) (IngredientRecord, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if rec, ok := knowledgeBase[key]; ok {
		return rec, true
	}
	return defaultRecord(), false
}

// knowledgeBase maps canonical INCI names to baseline attributes.
// Keys are lowercase. Built once at init, never mutated.
var knowledgeBase = map[string]IngredientRecord{
	"water":                   {SafetyScore: 100, EffectivenessScore: 10, AllergyRisk: 0, ResearchBacking: 100, Naturalness: 100, Innovation: 5},
	"aqua":                    {SafetyScore: 100, EffectivenessScore: 10, AllergyRisk: 0, ResearchBacking: 100, Naturalness: 100, Innovation: 5},
	"glycerin":                {SafetyScore: 95, EffectivenessScore: 80, AllergyRisk: 2, ResearchBacking: 95, Naturalness: 70, Innovation: 20},
	"hyaluronic acid":         {SafetyScore: 92, EffectivenessScore: 88, AllergyRisk: 2, ResearchBacking: 92, Naturalness: 40, Innovation: 75},
	"sodium hyaluronate":      {SafetyScore: 92, EffectivenessScore: 86, AllergyRisk: 2, ResearchBacking: 90, Naturalness: 40, Innovation: 75},
	"niacinamide":             {SafetyScore: 90, EffectivenessScore: 85, AllergyRisk: 5, ResearchBacking: 95, Naturalness: 30, Innovation: 80},
	"retinol":                 {SafetyScore: 70, EffectivenessScore: 92, AllergyRisk: 30, ResearchBacking: 98, Naturalness: 20, Innovation: 85},
	"bakuchiol":               {SafetyScore: 85, EffectivenessScore: 78, AllergyRisk: 8, ResearchBacking: 70, Naturalness: 85, Innovation: 90},
	"salicylic acid":          {SafetyScore: 75, EffectivenessScore: 88, AllergyRisk: 20, ResearchBacking: 95, Naturalness: 50, Innovation: 60},
	"glycolic acid":           {SafetyScore: 72, EffectivenessScore: 86, AllergyRisk: 25, ResearchBacking: 92, Naturalness: 60, Innovation: 55},
	"lactic acid":             {SafetyScore: 78, EffectivenessScore: 82, AllergyRisk: 18, ResearchBacking: 90, Naturalness: 70, Innovation: 50},
	"azelaic acid":            {SafetyScore: 82, EffectivenessScore: 84, AllergyRisk: 12, ResearchBacking: 88, Naturalness: 60, Innovation: 80},
	"ascorbic acid":           {SafetyScore: 80, EffectivenessScore: 88, AllergyRisk: 15, ResearchBacking: 95, Naturalness: 60, Innovation: 70},
	"vitamin c":               {SafetyScore: 80, EffectivenessScore: 88, AllergyRisk: 15, ResearchBacking: 95, Naturalness: 60, Innovation: 70},
	"tocopherol":              {SafetyScore: 90, EffectivenessScore: 75, AllergyRisk: 8, ResearchBacking: 92, Naturalness: 80, Innovation: 40},
	"vitamin e":               {SafetyScore: 90, EffectivenessScore: 75, AllergyRisk: 8, ResearchBacking: 92, Naturalness: 80, Innovation: 40},
	"ceramides":               {SafetyScore: 94, EffectivenessScore: 85, AllergyRisk: 3, ResearchBacking: 88, Naturalness: 60, Innovation: 70},
	"ceramide np":             {SafetyScore: 94, EffectivenessScore: 85, AllergyRisk: 3, ResearchBacking: 88, Naturalness: 60, Innovation: 70},
	"squalane":                {SafetyScore: 96, EffectivenessScore: 78, AllergyRisk: 2, ResearchBacking: 85, Naturalness: 90, Innovation: 60},
	"panthenol":               {SafetyScore: 95, EffectivenessScore: 76, AllergyRisk: 3, ResearchBacking: 90, Naturalness: 70, Innovation: 35},
	"allantoin":               {SafetyScore: 94, EffectivenessScore: 70, AllergyRisk: 3, ResearchBacking: 85, Naturalness: 75, Innovation: 30},
	"urea":                    {SafetyScore: 88, EffectivenessScore: 78, AllergyRisk: 8, ResearchBacking: 88, Naturalness: 60, Innovation: 35},
	"centella asiatica":       {SafetyScore: 90, EffectivenessScore: 78, AllergyRisk: 6, ResearchBacking: 80, Naturalness: 95, Innovation: 65},
	"aloe barbadensis":        {SafetyScore: 93, EffectivenessScore: 65, AllergyRisk: 5, ResearchBacking: 85, Naturalness: 100, Innovation: 25},
	"aloe vera":               {SafetyScore: 93, EffectivenessScore: 65, AllergyRisk: 5, ResearchBacking: 85, Naturalness: 100, Innovation: 25},
	"bisabolol":               {SafetyScore: 90, EffectivenessScore: 68, AllergyRisk: 8, ResearchBacking: 78, Naturalness: 95, Innovation: 30},
	"chamomile":               {SafetyScore: 90, EffectivenessScore: 68, AllergyRisk: 8, ResearchBacking: 78, Naturalness: 95, Innovation: 30},
	"green tea extract":       {SafetyScore: 91, EffectivenessScore: 72, AllergyRisk: 5, ResearchBacking: 82, Naturalness: 95, Innovation: 45},
	"camellia sinensis":       {SafetyScore: 91, EffectivenessScore: 72, AllergyRisk: 5, ResearchBacking: 82, Naturalness: 95, Innovation: 45},
	"peptides":                {SafetyScore: 88, EffectivenessScore: 84, AllergyRisk: 5, ResearchBacking: 80, Naturalness: 30, Innovation: 90},
	"copper peptides":         {SafetyScore: 84, EffectivenessScore: 80, AllergyRisk: 8, ResearchBacking: 72, Naturalness: 25, Innovation: 88},
	"zinc oxide":              {SafetyScore: 95, EffectivenessScore: 85, AllergyRisk: 4, ResearchBacking: 96, Naturalness: 80, Innovation: 40},
	"titanium dioxide":        {SafetyScore: 94, EffectivenessScore: 82, AllergyRisk: 3, ResearchBacking: 95, Naturalness: 80, Innovation: 35},
	"fragrance":               {SafetyScore: 55, EffectivenessScore: 10, AllergyRisk: 60, ResearchBacking: 70, Naturalness: 40, Innovation: 5},
	"parfum":                  {SafetyScore: 55, EffectivenessScore: 10, AllergyRisk: 60, ResearchBacking: 70, Naturalness: 40, Innovation: 5},
	"alcohol denat":           {SafetyScore: 50, EffectivenessScore: 30, AllergyRisk: 45, ResearchBacking: 80, Naturalness: 50, Innovation: 5},
	"dimethicone":             {SafetyScore: 90, EffectivenessScore: 60, AllergyRisk: 4, ResearchBacking: 90, Naturalness: 10, Innovation: 30},
	"cyclopentasiloxane":      {SafetyScore: 88, EffectivenessScore: 55, AllergyRisk: 4, ResearchBacking: 85, Naturalness: 10, Innovation: 30},
	"petrolatum":              {SafetyScore: 92, EffectivenessScore: 70, AllergyRisk: 2, ResearchBacking: 95, Naturalness: 30, Innovation: 5},
	"shea butter":             {SafetyScore: 90, EffectivenessScore: 72, AllergyRisk: 10, ResearchBacking: 80, Naturalness: 100, Innovation: 15},
	"jojoba oil":              {SafetyScore: 91, EffectivenessScore: 70, AllergyRisk: 8, ResearchBacking: 78, Naturalness: 100, Innovation: 20},
	"coconut oil":             {SafetyScore: 85, EffectivenessScore: 65, AllergyRisk: 15, ResearchBacking: 75, Naturalness: 100, Innovation: 10},
	"caffeine":                {SafetyScore: 90, EffectivenessScore: 62, AllergyRisk: 4, ResearchBacking: 80, Naturalness: 85, Innovation: 50},
	"phenoxyethanol":          {SafetyScore: 85, EffectivenessScore: 20, AllergyRisk: 12, ResearchBacking: 88, Naturalness: 20, Innovation: 10},
	"methylparaben":           {SafetyScore: 70, EffectivenessScore: 25, AllergyRisk: 25, ResearchBacking: 90, Naturalness: 10, Innovation: 5},
	"sodium lauryl sulfate":   {SafetyScore: 60, EffectivenessScore: 55, AllergyRisk: 40, ResearchBacking: 88, Naturalness: 40, Innovation: 5},
	"cocamidopropyl betaine":  {SafetyScore: 82, EffectivenessScore: 60, AllergyRisk: 18, ResearchBacking: 80, Naturalness: 60, Innovation: 15},
	"witch hazel":             {SafetyScore: 80, EffectivenessScore: 60, AllergyRisk: 15, ResearchBacking: 70, Naturalness: 95, Innovation: 20},
	"benzoyl peroxide":        {SafetyScore: 68, EffectivenessScore: 90, AllergyRisk: 35, ResearchBacking: 95, Naturalness: 20, Innovation: 45},
	"ferulic acid":            {SafetyScore: 85, EffectivenessScore: 80, AllergyRisk: 8, ResearchBacking: 85, Naturalness: 80, Innovation: 75},
	"resveratrol":             {SafetyScore: 86, EffectivenessScore: 74, AllergyRisk: 6, ResearchBacking: 78, Naturalness: 90, Innovation: 70},
	"sodium chloride":         {SafetyScore: 95, EffectivenessScore: 15, AllergyRisk: 2, ResearchBacking: 90, Naturalness: 100, Innovation: 5},
}
