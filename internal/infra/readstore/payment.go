package readstore

import (
	"context"

	"staybook/internal/domain/payment"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	paymentByID       = `SELECT ` + converter.PaymentColumns + ` FROM payments WHERE id = $1`
	paymentByIntentID = `SELECT ` + converter.PaymentColumns + ` FROM payments WHERE intent_id = $1`
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(db db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: db}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := converter.ScanPayment(r.db.QueryRow(ctx, paymentByID, id))
	if err != nil {
		return nil, notFoundOr("payment", err)
	}
	return &queries.PaymentView{
		ID:            row.ID,
		GuestID:       row.GuestID,
		IntentID:      row.IntentID,
		PropertyID:    row.PropertyID,
		RoomIDs:       row.RoomIDs,
		CheckIn:       pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:      pgconv.DateFromPgtype(row.CheckOut),
		AmountCents:   row.AmountCents,
		Currency:      row.Currency,
		Status:        row.Status,
		ReservationID: pgconv.UUIDPtrFromPgtype(row.ReservationID),
		FailureReason: row.FailureReason,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (r *PaymentReadStore) LoadPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	return r.load(ctx, paymentByID, id)
}

func (r *PaymentReadStore) LoadPaymentByIntent(ctx context.Context, intentID string) (*payment.Payment, error) {
	return r.load(ctx, paymentByIntentID, intentID)
}

func (r *PaymentReadStore) load(ctx context.Context, sql string, arg any) (*payment.Payment, error) {
	row, err := converter.ScanPayment(r.db.QueryRow(ctx, sql, arg))
	if err != nil {
		return nil, notFoundOr("payment", err)
	}
	p, err := converter.PaymentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment row", err, infra.KindDBFailure)
	}
	return p, nil
}
