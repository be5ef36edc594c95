//go:build unit

package commands_test

import (
	"context"
	"testing"

	"staybook/internal/domain/preference"
	"staybook/internal/domain/rating"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/fakeuow"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestPreference_CreatePreferences(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		weights       rating.Weights
		expectKind    error
		expectCeiling *preference.CeilingExceededError
	}{
		{
			name:    "success: well under the ceiling",
			weights: rating.Weights{2, 3, 5, 4, 3, 2, 1},
		},
		{
			name:    "success: exactly at the ceiling",
			weights: rating.Weights{8, 6, 6, 6, 6, 6, 6},
		},
		{
			name:    "success: all zero",
			weights: rating.Weights{},
		},
		{
			name:          "error: one point over the ceiling",
			weights:       rating.Weights{9, 6, 6, 6, 6, 6, 6},
			expectKind:    errs.ErrValidation,
			expectCeiling: &preference.CeilingExceededError{Total: 45, Ceiling: 44},
		},
		{
			name:       "error: negative weight",
			weights:    rating.Weights{5, -1, 0, 0, 0, 0, 0},
			expectKind: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := fakeuow.New()
			uc := commands.NewPreferenceUseCase(store, clock.NewMockClock(testNow), config.NewTestConfig())
			userID := uuid.New()

			err := uc.CreatePreferences(ctx, userID, tc.weights)

			if tc.expectKind != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind))
				if tc.expectCeiling != nil {
					var ceilErr *preference.CeilingExceededError
					require.True(t, errs.As(err, &ceilErr))
					assert.Equal(t, tc.expectCeiling, ceilErr)
				}
				assert.Nil(t, store.Preferences(userID))
				return
			}
			require.NoError(t, err)
			stored := store.Preferences(userID)
			require.NotNil(t, stored)
			assert.Equal(t, tc.weights, stored.Weights())
		})
	}

	t.Run("error: preferences already stored", func(t *testing.T) {
		store := fakeuow.New()
		uc := commands.NewPreferenceUseCase(store, clock.NewMockClock(testNow), config.NewTestConfig())
		userID := uuid.New()

		require.NoError(t, uc.CreatePreferences(ctx, userID, rating.Weights{1, 1, 1, 1, 1, 1, 1}))
		err := uc.CreatePreferences(ctx, userID, rating.Weights{2, 2, 2, 2, 2, 2, 2})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, rating.Weights{1, 1, 1, 1, 1, 1, 1}, store.Preferences(userID).Weights())
	})

	t.Run("zero ceiling in config falls back to the default", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Booking.PreferenceWeightCeiling = 0
		uc := commands.NewPreferenceUseCase(fakeuow.New(), clock.NewMockClock(testNow), cfg)

		err := uc.CreatePreferences(ctx, uuid.New(), rating.Weights{9, 6, 6, 6, 6, 6, 6})

		var ceilErr *preference.CeilingExceededError
		require.True(t, errs.As(err, &ceilErr))
		assert.Equal(t, preference.DefaultCeiling, ceilErr.Ceiling)
	})
}

func TestPreference_UpdatePreferences(t *testing.T) {
	ctx := context.Background()
	base := rating.Weights{5, 5, 5, 5, 5, 5, 5}

	testCases := []struct {
		name       string
		patch      preference.Patch
		expect     rating.Weights
		expectKind error
	}{
		{
			name:   "success: single field merged over stored weights",
			patch:  preference.Patch{Wifi: intPtr(9)},
			expect: rating.Weights{5, 5, 5, 5, 5, 5, 9},
		},
		{
			name:   "success: empty patch keeps everything",
			patch:  preference.Patch{},
			expect: base,
		},
		{
			name:   "success: lowering one raises another within the ceiling",
			patch:  preference.Patch{Personal: intPtr(0), Location: intPtr(14)},
			expect: rating.Weights{0, 5, 5, 5, 5, 14, 5},
		},
		{
			name:       "error: merged total over the ceiling",
			patch:      preference.Patch{Comfort: intPtr(15)},
			expectKind: errs.ErrValidation,
		},
		{
			name:       "error: negative weight",
			patch:      preference.Patch{Cleanliness: intPtr(-2)},
			expectKind: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := fakeuow.New()
			userID := uuid.New()
			store.PutPreferences(preference.Reconstruct(userID, base, testNow))
			uc := commands.NewPreferenceUseCase(store, clock.NewMockClock(testNow), config.NewTestConfig())

			merged, err := uc.UpdatePreferences(ctx, userID, tc.patch)

			if tc.expectKind != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind))
				assert.Equal(t, base, store.Preferences(userID).Weights())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, merged)
			assert.Equal(t, tc.expect, store.Preferences(userID).Weights())
		})
	}

	t.Run("error: nothing stored yet", func(t *testing.T) {
		uc := commands.NewPreferenceUseCase(fakeuow.New(), clock.NewMockClock(testNow), config.NewTestConfig())

		_, err := uc.UpdatePreferences(ctx, uuid.New(), preference.Patch{Wifi: intPtr(1)})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errs.Is(err, commands.ErrPreferencesNotFound))
	})
}

func TestFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("add is idempotent", func(t *testing.T) {
		store := fakeuow.New()
		prop := seedProperty(t, store, uuid.New())
		uc := commands.NewFavoriteUseCase(store, clock.NewMockClock(testNow))
		userID := uuid.New()

		require.NoError(t, uc.AddFavorite(ctx, userID, prop.ID()))
		require.NoError(t, uc.AddFavorite(ctx, userID, prop.ID()))

		assert.True(t, store.HasFavorite(userID, prop.ID()))
	})

	t.Run("unknown property", func(t *testing.T) {
		store := fakeuow.New()
		uc := commands.NewFavoriteUseCase(store, clock.NewMockClock(testNow))
		userID, propertyID := uuid.New(), uuid.New()

		err := uc.AddFavorite(ctx, userID, propertyID)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, store.HasFavorite(userID, propertyID))
	})

	t.Run("missing user id", func(t *testing.T) {
		store := fakeuow.New()
		prop := seedProperty(t, store, uuid.New())
		uc := commands.NewFavoriteUseCase(store, clock.NewMockClock(testNow))

		err := uc.AddFavorite(ctx, uuid.Nil, prop.ID())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("remove", func(t *testing.T) {
		store := fakeuow.New()
		prop := seedProperty(t, store, uuid.New())
		uc := commands.NewFavoriteUseCase(store, clock.NewMockClock(testNow))
		userID := uuid.New()
		require.NoError(t, uc.AddFavorite(ctx, userID, prop.ID()))

		require.NoError(t, uc.RemoveFavorite(ctx, userID, prop.ID()))
		assert.False(t, store.HasFavorite(userID, prop.ID()))

		require.NoError(t, uc.RemoveFavorite(ctx, userID, prop.ID()))
	})
}
