package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	reviewScoreColumns = `rv.personal, rv.facilities, rv.cleanliness, rv.comfort, rv.value_for_money, rv.location, rv.wifi`

	reviewViewByID = `SELECT rv.id, rv.user_id, u.email, rv.property_id, p.name, rv.reservation_id, ` + reviewScoreColumns + `,
    rv.comment, rv.created_at, rv.updated_at
FROM reviews rv
JOIN users u ON u.id = rv.user_id
JOIN properties p ON p.id = rv.property_id
WHERE rv.id = $1`

	reviewSnapshotByID = `SELECT rv.id, rv.user_id, rv.property_id, rv.reservation_id, ` + reviewScoreColumns + `,
    rv.comment, rv.created_at
FROM reviews rv WHERE rv.id = $1`

	reviewListSelect = `SELECT rv.id, u.email, ` + reviewScoreColumns + `, rv.comment, rv.created_at
FROM reviews rv
JOIN users u ON u.id = rv.user_id
`

	reviewsByProperty = reviewListSelect + `WHERE rv.property_id = $1
  AND ($2::timestamptz IS NULL OR (rv.created_at, rv.id) < ($2, $3))
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT $4`

	reviewsByUser = reviewListSelect + `WHERE rv.user_id = $1
  AND ($2::timestamptz IS NULL OR (rv.created_at, rv.id) < ($2, $3))
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT $4`
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := r.db.QueryRow(ctx, reviewViewByID, id).Scan(
		&v.ID, &v.UserID, &v.UserEmail, &v.PropertyID, &v.PropertyName, &v.ReservationID,
		&v.Scores.Personal, &v.Scores.Facilities, &v.Scores.Cleanliness, &v.Scores.Comfort,
		&v.Scores.ValueForMoney, &v.Scores.Location, &v.Scores.Wifi,
		&v.Comment, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr("review", err)
	}
	return &v, nil
}

func (r *ReviewReadStore) FindByProperty(ctx context.Context, propertyID uuid.UUID, after queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	return r.list(ctx, reviewsByProperty, propertyID, after, limit)
}

func (r *ReviewReadStore) FindByUser(ctx context.Context, userID uuid.UUID, after queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	return r.list(ctx, reviewsByUser, userID, after, limit)
}

func (r *ReviewReadStore) list(ctx context.Context, sql string, owner uuid.UUID, after queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, sql, owner, keysetTime(after), after.ID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var items []*queries.ReviewListItem
	for rows.Next() {
		var it queries.ReviewListItem
		if err := rows.Scan(&it.ID, &it.UserEmail,
			&it.Scores.Personal, &it.Scores.Facilities, &it.Scores.Cleanliness, &it.Scores.Comfort,
			&it.Scores.ValueForMoney, &it.Scores.Location, &it.Scores.Wifi,
			&it.Comment, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	return items, nil
}

func (r *ReviewReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	var (
		s      shared.ReviewSnapshot
		scores [7]int16
	)
	err := r.db.QueryRow(ctx, reviewSnapshotByID, id).Scan(
		&s.ID, &s.UserID, &s.PropertyID, &s.ReservationID,
		&scores[0], &scores[1], &scores[2], &scores[3], &scores[4], &scores[5], &scores[6],
		&s.Comment, &s.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr("review", err)
	}
	for i, v := range scores {
		s.Scores[i] = int(v)
	}
	return &s, nil
}
