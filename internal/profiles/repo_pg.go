package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) (Profile, error) {
	concerns, err := marshalList(profile.Concerns)
	if err != nil {
		return Profile{}, fmt.Errorf("marshal concerns: %w", err)
	}
	allergies, err := marshalList(profile.Allergies)
	if err != nil {
		return Profile{}, fmt.Errorf("marshal allergies: %w", err)
	}
	preferences, err := marshalList(profile.Preferences)
	if err != nil {
		return Profile{}, fmt.Errorf("marshal preferences: %w", err)
	}

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	const query = `
INSERT INTO skin_profiles (id, user_id, skin_type, concerns, allergies, preferences, age, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  skin_type = EXCLUDED.skin_type,
  concerns = EXCLUDED.concerns,
  allergies = EXCLUDED.allergies,
  preferences = EXCLUDED.preferences,
  age = EXCLUDED.age,
  updated_at = now()
RETURNING id, created_at, updated_at`
	err = r.DB.QueryRowContext(ctx, query,
		profile.ID,
		profile.UserID,
		profile.SkinType,
		concerns,
		allergies,
		preferences,
		profile.Age,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT id, user_id, skin_type, concerns, allergies, preferences, age, created_at, updated_at
FROM skin_profiles
WHERE user_id = $1
LIMIT 1`
	var profile Profile
	var concerns, allergies, preferences []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.SkinType,
		&concerns,
		&allergies,
		&preferences,
		&profile.Age,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if profile.Concerns, err = unmarshalList(concerns); err != nil {
		return Profile{}, fmt.Errorf("unmarshal concerns: %w", err)
	}
	if profile.Allergies, err = unmarshalList(allergies); err != nil {
		return Profile{}, fmt.Errorf("unmarshal allergies: %w", err)
	}
	if profile.Preferences, err = unmarshalList(preferences); err != nil {
		return Profile{}, fmt.Errorf("unmarshal preferences: %w", err)
	}
	return profile, nil
}

func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM skin_profiles WHERE user_id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalList(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}

func unmarshalList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
