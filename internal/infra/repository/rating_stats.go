package repository

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

const recalcPropertyRatingStats = `INSERT INTO property_rating_stats (
    property_id, total_reviews, avg_personal, avg_facilities, avg_cleanliness, avg_comfort,
    avg_value_for_money, avg_location, avg_wifi, updated_at)
SELECT $1, count(*),
    COALESCE(avg(personal), 0), COALESCE(avg(facilities), 0), COALESCE(avg(cleanliness), 0),
    COALESCE(avg(comfort), 0), COALESCE(avg(value_for_money), 0), COALESCE(avg(location), 0),
    COALESCE(avg(wifi), 0), now()
FROM reviews WHERE property_id = $1
ON CONFLICT (property_id) DO UPDATE SET
    total_reviews = EXCLUDED.total_reviews,
    avg_personal = EXCLUDED.avg_personal,
    avg_facilities = EXCLUDED.avg_facilities,
    avg_cleanliness = EXCLUDED.avg_cleanliness,
    avg_comfort = EXCLUDED.avg_comfort,
    avg_value_for_money = EXCLUDED.avg_value_for_money,
    avg_location = EXCLUDED.avg_location,
    avg_wifi = EXCLUDED.avg_wifi,
    updated_at = EXCLUDED.updated_at`

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

func (r *RatingStatsRepository) RecalcPropertyRatingStats(ctx context.Context, tx db.DBTX, propertyID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcPropertyRatingStats, propertyID); err != nil {
		return infra.WrapRepoErr("failed to recalculate rating stats", err)
	}
	return nil
}
