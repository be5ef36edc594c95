package repository

import (
	"context"

	"staybook/internal/domain/favorite"
	"staybook/internal/infra"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

const (
	addFavorite = `INSERT INTO favorites (user_id, property_id, created_at) VALUES ($1, $2, $3)
ON CONFLICT (user_id, property_id) DO NOTHING`

	removeFavorite = `DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`
)

type FavoriteRepository struct{}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

func (r *FavoriteRepository) Add(ctx context.Context, tx db.DBTX, f favorite.Favorite) error {
	if _, err := tx.Exec(ctx, addFavorite, f.UserID, f.PropertyID, f.CreatedAt); err != nil {
		return infra.WrapRepoErr("failed to add favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, tx db.DBTX, userID, propertyID uuid.UUID) error {
	tag, err := tx.Exec(ctx, removeFavorite, userID, propertyID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("favorite not found", nil, infra.KindNotFound)
	}
	return nil
}
