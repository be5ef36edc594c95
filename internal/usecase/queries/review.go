package queries

//go:generate mockgen -source=review.go -destination=../../testutil/mock/queries/review_mock.go -package=queriesmock

import (
	"context"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound = errs.New("review not found")
	ErrReviewAccess   = errs.New("review access denied")
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByProperty(ctx context.Context, propertyID uuid.UUID, after Keyset, limit int32) ([]*ReviewListItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID, after Keyset, limit int32) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	ListByUser(ctx context.Context, userID uuid.UUID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrReviewNotFound)
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.FindByProperty(ctx, propertyID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, reviewKey)
	return items, next, nil
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	if actorRole != user.RoleAdmin && userID != actorID {
		return nil, nil, errs.Forbidden(ErrReviewAccess)
	}

	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.FindByUser(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, reviewKey)
	return items, next, nil
}

func reviewKey(r *ReviewListItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID }
