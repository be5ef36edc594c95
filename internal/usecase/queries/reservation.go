package queries

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"time"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByGuest(ctx context.Context, guestID uuid.UUID, after Keyset, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*ReservationView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID is visible to the guest and to the property owner.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrReservationNotFound)
		}
		return nil, err
	}
	if view.GuestID != actorID && view.OwnerID != actorID {
		return nil, errs.Forbidden(ErrReservationAccess)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.FindByGuest(ctx, guestID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(r *ReservationListItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return items, next, nil
}
