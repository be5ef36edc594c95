package commands

//go:generate mockgen -source=favorite.go -destination=../../testutil/mock/commands/favorite_mock.go -package=commandsmock

import (
	"context"

	"staybook/internal/domain/favorite"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavoriteCommands interface {
	AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) error
}

type favoriteUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFavoriteUseCase(uow shared.UnitOfWork, clk clock.Clock) FavoriteCommands {
	return &favoriteUseCaseImpl{uow: uow, clock: clk}
}

// AddFavorite is idempotent; bookmarking twice keeps the first timestamp.
func (uc *favoriteUseCaseImpl) AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) error {
	fav, err := favorite.New(userID, propertyID, uc.clock.Now())
	if err != nil {
		return errs.Validation(err)
	}
	if _, err := uc.uow.CommandReads().PropertyByID(ctx, propertyID); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return errs.NotFound(ErrPropertyNotFound)
		}
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favorites().Add(ctx, tx.DB(), fav)
	})
}

func (uc *favoriteUseCaseImpl) RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Favorites().Remove(ctx, tx.DB(), userID, propertyID)
	})
}
