package queries

//go:generate mockgen -source=property.go -destination=../../testutil/mock/queries/property_mock.go -package=queriesmock

import (
	"context"
	"time"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrPropertyNotFound = errs.New("property not found")

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	RoomsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*RoomView, error)
	RatingSummary(ctx context.Context, propertyID uuid.UUID) (RatingSummary, error)
	List(ctx context.Context, filter PropertyFilter, after Keyset, limit int32) ([]*PropertyListItem, error)
}

type PropertyFilter struct {
	Region  string
	OwnerID *uuid.UUID
}

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context, filter PropertyFilter, cursor *Cursor, limit int) ([]*PropertyListItem, *Cursor, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
}

func NewPropertyQueries(store PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	var (
		view    *PropertyView
		rooms   []*RoomView
		summary RatingSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view, err = q.store.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		rooms, err = q.store.RoomsByProperty(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = q.store.RatingSummary(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrPropertyNotFound)
		}
		return nil, err
	}

	view.Rooms = rooms
	view.Ratings = summary
	return view, nil
}

func (q *propertyQueriesImpl) List(ctx context.Context, filter PropertyFilter, cursor *Cursor, limit int) ([]*PropertyListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(p *PropertyListItem) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })
	return items, next, nil
}
