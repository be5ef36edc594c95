package repository

import (
	"context"

	"staybook/internal/domain/preference"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
)

const upsertPreferences = `INSERT INTO user_preferences (
    user_id, personal, facilities, cleanliness, comfort, value_for_money, location, wifi, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id) DO UPDATE SET
    personal = EXCLUDED.personal,
    facilities = EXCLUDED.facilities,
    cleanliness = EXCLUDED.cleanliness,
    comfort = EXCLUDED.comfort,
    value_for_money = EXCLUDED.value_for_money,
    location = EXCLUDED.location,
    wifi = EXCLUDED.wifi,
    updated_at = EXCLUDED.updated_at`

type PreferenceRepository struct{}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

func (r *PreferenceRepository) Upsert(ctx context.Context, tx db.DBTX, p *preference.Preferences) error {
	w := p.Weights()
	args := []any{p.UserID()}
	for _, v := range w {
		args = append(args, int16(v))
	}
	args = append(args, p.UpdatedAt())
	if _, err := tx.Exec(ctx, upsertPreferences, args...); err != nil {
		return infra.WrapRepoErr("failed to save preferences", err)
	}
	return nil
}
