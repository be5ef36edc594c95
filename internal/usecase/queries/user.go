package queries

//go:generate mockgen -source=user.go -destination=../../testutil/mock/queries/user_mock.go -package=queriesmock

import (
	"context"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound        = errs.New("user not found")
	ErrUserInactive        = errs.New("user inactive")
	ErrPreferencesNotFound = errs.New("preferences not found")
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	Preferences(ctx context.Context, userID uuid.UUID) (*PreferencesView, error)
	Favorites(ctx context.Context, userID uuid.UUID) ([]*FavoriteItem, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferencesView, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*FavoriteItem, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.store.FindByID(ctx, userID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrUserNotFound)
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, errs.Forbidden(ErrUserInactive)
	}
	return u, nil
}

// GetProfile bundles the user with stated preferences and bookmarks.
// Missing preferences leave the field empty.
func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	u, err := q.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &ProfileView{User: *u}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prefs, err := q.store.Preferences(gctx, userID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return nil
			}
			return err
		}
		profile.Preferences = prefs
		return nil
	})
	g.Go(func() error {
		favs, err := q.store.Favorites(gctx, userID)
		if err != nil {
			return err
		}
		profile.Favorites = favs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (q *userQueriesImpl) GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferencesView, error) {
	prefs, err := q.store.Preferences(ctx, userID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrPreferencesNotFound)
		}
		return nil, err
	}
	return prefs, nil
}

func (q *userQueriesImpl) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*FavoriteItem, error) {
	return q.store.Favorites(ctx, userID)
}
