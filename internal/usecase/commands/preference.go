package commands

//go:generate mockgen -source=preference.go -destination=../../testutil/mock/commands/preference_mock.go -package=commandsmock

import (
	"context"

	"staybook/internal/domain/preference"
	"staybook/internal/domain/rating"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPreferencesExist    = errs.New("preferences already exist")
	ErrPreferencesNotFound = errs.New("preferences not found")
)

type PreferenceCommands interface {
	CreatePreferences(ctx context.Context, userID uuid.UUID, w rating.Weights) error
	UpdatePreferences(ctx context.Context, userID uuid.UUID, p preference.Patch) (rating.Weights, error)
}

type preferenceUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	ceiling int
}

func NewPreferenceUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) PreferenceCommands {
	ceiling := cfg.Booking.PreferenceWeightCeiling
	if ceiling <= 0 {
		ceiling = preference.DefaultCeiling
	}
	return &preferenceUseCaseImpl{uow: uow, clock: clk, ceiling: ceiling}
}

func (uc *preferenceUseCaseImpl) CreatePreferences(ctx context.Context, userID uuid.UUID, w rating.Weights) error {
	prefs, err := preference.New(userID, w, uc.ceiling, uc.clock.Now())
	if err != nil {
		return errs.Validation(err)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Reads().PreferencesByUser(ctx, userID)
		switch {
		case err == nil:
			return errs.Conflict(ErrPreferencesExist)
		case !errs.Is(err, errs.ErrNotFound):
			return err
		}
		return tx.Preferences().Upsert(ctx, tx.DB(), prefs)
	})
}

// UpdatePreferences merges the patch over the stored weights before the
// ceiling check.
func (uc *preferenceUseCaseImpl) UpdatePreferences(ctx context.Context, userID uuid.UUID, p preference.Patch) (rating.Weights, error) {
	var merged rating.Weights
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prefs, err := tx.Reads().PreferencesByUser(ctx, userID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return errs.NotFound(ErrPreferencesNotFound)
			}
			return err
		}
		if err := prefs.Update(p, uc.ceiling, uc.clock.Now()); err != nil {
			return errs.Validation(err)
		}
		merged = prefs.Weights()
		return tx.Preferences().Upsert(ctx, tx.DB(), prefs)
	})
	if err != nil {
		return rating.Weights{}, err
	}
	return merged, nil
}
