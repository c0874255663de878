package scoring

// skinTypeMultipliers adjusts compatibility for exact ingredient names per
// skin type. Keys are lowercase ingredient names; a missing entry means a
// neutral 1.0 multiplier.
var skinTypeMultipliers = map[SkinType]map[string]float64{
	SkinTypeDry: {
		"hyaluronic acid":    1.3,
		"sodium hyaluronate": 1.3,
		"glycerin":           1.25,
		"ceramides":          1.3,
		"ceramide np":        1.3,
		"squalane":           1.2,
		"shea butter":        1.15,
		"alcohol denat":      0.5,
	},
	SkinTypeOily: {
		"salicylic acid": 1.3,
		"niacinamide":    1.2,
		"zinc oxide":     1.15,
		"shea butter":    0.7,
		"coconut oil":    0.6,
		"petrolatum":     0.6,
	},
	SkinTypeSensitive: {
		"centella asiatica": 1.25,
		"allantoin":         1.2,
		"panthenol":         1.2,
		"fragrance":         0.4,
		"parfum":            0.4,
		"alcohol denat":     0.5,
	},
	SkinTypeCombination: {
		"niacinamide":     1.2,
		"hyaluronic acid": 1.15,
		"salicylic acid":  1.1,
	},
	SkinTypeNormal: {},
}

func multiplierFor(skinType SkinType, loweredName string) float64 {
	rules, ok := skinTypeMultipliers[skinType]
	if !ok {
		return 1.0
	}
	if m, ok := rules[loweredName]; ok {
		return m
	}
	return 1.0
}
