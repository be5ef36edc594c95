package converter

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const PaymentColumns = `id, intent_id, guest_id, property_id, room_ids, check_in, check_out,
	amount_cents, currency, status, reservation_id, failure_reason, created_at, updated_at`

type PaymentRow struct {
	ID            uuid.UUID
	IntentID      string
	GuestID       uuid.UUID
	PropertyID    uuid.UUID
	RoomIDs       []uuid.UUID
	CheckIn       pgtype.Date
	CheckOut      pgtype.Date
	AmountCents   int64
	Currency      string
	Status        string
	ReservationID pgtype.UUID
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ScanPayment(row pgx.Row) (PaymentRow, error) {
	var r PaymentRow
	err := row.Scan(
		&r.ID, &r.IntentID, &r.GuestID, &r.PropertyID, &r.RoomIDs, &r.CheckIn, &r.CheckOut,
		&r.AmountCents, &r.Currency, &r.Status, &r.ReservationID, &r.FailureReason, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func PaymentToDomain(r PaymentRow) (*payment.Payment, error) {
	stay, err := booking.NewDateRange(pgconv.DateFromPgtype(r.CheckIn), pgconv.DateFromPgtype(r.CheckOut))
	if err != nil {
		return nil, err
	}
	key, err := booking.NewKey(r.GuestID, r.PropertyID, r.RoomIDs, stay)
	if err != nil {
		return nil, err
	}
	amount, err := booking.NewMoney(r.AmountCents, r.Currency)
	if err != nil {
		return nil, err
	}
	status, err := payment.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(
		r.ID, r.IntentID, amount, key, status,
		pgconv.UUIDPtrFromPgtype(r.ReservationID), r.FailureReason,
		r.CreatedAt, r.UpdatedAt,
	), nil
}
