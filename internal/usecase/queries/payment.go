package queries

//go:generate mockgen -source=payment.go -destination=../../testutil/mock/queries/payment_mock.go -package=queriesmock

import (
	"context"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
}

type PaymentQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

// GetByID only shows a guest their own payments. Someone else's payment is
// reported as missing.
func (q *paymentQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*PaymentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrPaymentNotFound)
		}
		return nil, err
	}
	if view.GuestID != actorID {
		return nil, errs.NotFound(ErrPaymentNotFound)
	}
	return view, nil
}
