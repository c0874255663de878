package profiles

import (
	"time"

	"glowcheck-backend/internal/scoring"
)

// Profile is a user's stored skin profile. One profile per user.
type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	SkinType    string    `json:"skinType"`
	Concerns    []string  `json:"concerns"`
	Allergies   []string  `json:"allergies"`
	Preferences []string  `json:"preferences"`
	Age         int       `json:"age,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToScoringProfile converts the stored record into the scorer's input shape.
func (p Profile) ToScoringProfile() *scoring.SkinProfile {
	skinType, ok := scoring.ParseSkinType(p.SkinType)
	if !ok {
		return nil
	}
	return &scoring.SkinProfile{
		SkinType:     skinType,
		SkinConcerns: p.Concerns,
		Allergies:    p.Allergies,
		Preferences:  p.Preferences,
	}
}
