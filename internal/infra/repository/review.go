package repository

import (
	"context"

	"staybook/internal/domain/review"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	createReview = `INSERT INTO reviews (id, user_id, property_id, reservation_id,
    personal, facilities, cleanliness, comfort, value_for_money, location, wifi, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

	updateReview = `UPDATE reviews
SET personal = $2, facilities = $3, cleanliness = $4, comfort = $5, value_for_money = $6, location = $7, wifi = $8,
    comment = $9, updated_at = $10
WHERE id = $1`

	deleteReview = `DELETE FROM reviews WHERE id = $1`
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	args := []any{rev.ID(), rev.UserID(), rev.PropertyID(), rev.ReservationID()}
	args = append(args, converter.ReviewArgs(rev)...)
	args = append(args, rev.Comment().String(), rev.CreatedAt(), rev.UpdatedAt())

	var id uuid.UUID
	if err := tx.QueryRow(ctx, createReview, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	args := []any{rev.ID()}
	args = append(args, converter.ReviewArgs(rev)...)
	args = append(args, rev.Comment().String(), rev.UpdatedAt())

	tag, err := tx.Exec(ctx, updateReview, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReview, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
