package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glowcheck-backend/internal/scoring"
)

var ErrInvalidSkinType = errors.New("invalid skin type")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save validates and upserts the user's skin profile.
func (s *Service) Save(ctx context.Context, profile Profile) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(profile.UserID) == "" {
		return Profile{}, errors.New("user id is required")
	}

	skinType := strings.ToLower(strings.TrimSpace(profile.SkinType))
	if _, ok := scoring.ParseSkinType(skinType); !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrInvalidSkinType, profile.SkinType)
	}
	profile.SkinType = skinType
	profile.Concerns = cleanList(profile.Concerns)
	profile.Allergies = cleanList(profile.Allergies)
	profile.Preferences = cleanList(profile.Preferences)
	if profile.Age < 0 {
		profile.Age = 0
	}

	return s.Repo.Upsert(ctx, profile)
}

// GetByUser returns the user's skin profile if one exists.
func (s *Service) GetByUser(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}
	return s.Repo.GetByUser(ctx, userID)
}

// Delete removes the user's skin profile.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	return s.Repo.DeleteByUser(ctx, userID)
}

// ScoringProfileFor loads the user's profile in the scorer's input shape.
// A missing profile is not an error; scoring simply proceeds unpersonalized.
func (s *Service) ScoringProfileFor(ctx context.Context, userID string) (*scoring.SkinProfile, error) {
	profile, err := s.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile.ToScoringProfile(), nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
