package repository

import (
	"context"

	"staybook/internal/domain/payment"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createPayment = `INSERT INTO payments (` + converter.PaymentColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	lockPaymentByID = `SELECT ` + converter.PaymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`

	updatePayment = `UPDATE payments
SET status = $2, reservation_id = $3, failure_reason = $4, updated_at = $5
WHERE id = $1`
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	key := p.Key()
	_, err := tx.Exec(ctx, createPayment,
		p.ID(), p.IntentID(), key.GuestID(), key.PropertyID(), key.RoomIDs(),
		pgconv.DateToPgtype(key.Stay().CheckIn()), pgconv.DateToPgtype(key.Stay().CheckOut()),
		p.Amount().Cents(), p.Amount().Currency(), p.Status().String(),
		pgconv.UUIDPtrToPgtype(p.ReservationID()), p.FailureReason(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*payment.Payment, error) {
	row, err := converter.ScanPayment(tx.QueryRow(ctx, lockPaymentByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	p, err := converter.PaymentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment row", err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *PaymentRepository) Update(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	tag, err := tx.Exec(ctx, updatePayment,
		p.ID(), p.Status().String(), pgconv.UUIDPtrToPgtype(p.ReservationID()), p.FailureReason(), p.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
