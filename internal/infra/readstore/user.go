package readstore

import (
	"context"
	"time"

	"staybook/internal/domain/preference"
	"staybook/internal/domain/rating"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	userByID = `SELECT id, email, role, is_active FROM users WHERE id = $1`

	preferencesByUser = `SELECT personal, facilities, cleanliness, comfort, value_for_money, location, wifi, updated_at
FROM user_preferences WHERE user_id = $1`

	favoritesByUser = `SELECT f.property_id, p.name, p.region, f.created_at
FROM favorites f JOIN properties p ON p.id = f.property_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC, f.property_id`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var u queries.UserView
	if err := r.db.QueryRow(ctx, userByID, id).Scan(&u.ID, &u.Email, &u.Role, &u.IsActive); err != nil {
		return nil, notFoundOr("user", err)
	}
	return &u, nil
}

func (r *UserReadStore) Preferences(ctx context.Context, userID uuid.UUID) (*queries.PreferencesView, error) {
	w, updatedAt, err := loadWeights(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}
	return &queries.PreferencesView{
		Personal:      w[rating.Personal],
		Facilities:    w[rating.Facilities],
		Cleanliness:   w[rating.Cleanliness],
		Comfort:       w[rating.Comfort],
		ValueForMoney: w[rating.ValueForMoney],
		Location:      w[rating.Location],
		Wifi:          w[rating.Wifi],
		Total:         w.Total(),
		UpdatedAt:     updatedAt,
	}, nil
}

func (r *UserReadStore) Favorites(ctx context.Context, userID uuid.UUID) ([]*queries.FavoriteItem, error) {
	rows, err := r.db.Query(ctx, favoritesByUser, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	defer rows.Close()

	items := []*queries.FavoriteItem{}
	for rows.Next() {
		var it queries.FavoriteItem
		if err := rows.Scan(&it.PropertyID, &it.PropertyName, &it.Region, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan favorite", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	return items, nil
}

func (r *UserReadStore) LoadPreferences(ctx context.Context, userID uuid.UUID) (*preference.Preferences, error) {
	w, updatedAt, err := loadWeights(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}
	return preference.Reconstruct(userID, w, updatedAt), nil
}

func loadWeights(ctx context.Context, q db.DBTX, userID uuid.UUID) (rating.Weights, time.Time, error) {
	var (
		raw       [rating.CategoryCount]int16
		updatedAt time.Time
	)
	err := q.QueryRow(ctx, preferencesByUser, userID).Scan(
		&raw[0], &raw[1], &raw[2], &raw[3], &raw[4], &raw[5], &raw[6], &updatedAt)
	if err != nil {
		return rating.Weights{}, time.Time{}, notFoundOr("preferences", err)
	}
	var w rating.Weights
	for i, v := range raw {
		w[i] = int(v)
	}
	return w, updatedAt, nil
}

// optionalWeights maps a missing preferences row to nil.
func optionalWeights(ctx context.Context, q db.DBTX, userID uuid.UUID) (*rating.Weights, error) {
	w, _, err := loadWeights(ctx, q, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}
