package converter

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationColumns expects the reservations table aliased as r.
const ReservationColumns = `r.id, r.guest_id, r.property_id, r.payment_id,
	COALESCE((SELECT array_agg(rr.room_id ORDER BY rr.room_id) FROM reservation_rooms rr WHERE rr.reservation_id = r.id), '{}'),
	r.check_in, r.check_out, r.status, r.created_at, r.updated_at`

type ReservationRow struct {
	ID         uuid.UUID
	GuestID    uuid.UUID
	PropertyID uuid.UUID
	PaymentID  uuid.UUID
	RoomIDs    []uuid.UUID
	CheckIn    pgtype.Date
	CheckOut   pgtype.Date
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ScanReservation(row pgx.Row) (ReservationRow, error) {
	var r ReservationRow
	err := row.Scan(&r.ID, &r.GuestID, &r.PropertyID, &r.PaymentID, &r.RoomIDs,
		&r.CheckIn, &r.CheckOut, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func ReservationToDomain(r ReservationRow) (*reservation.Reservation, error) {
	stay, err := booking.NewDateRange(pgconv.DateFromPgtype(r.CheckIn), pgconv.DateFromPgtype(r.CheckOut))
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		r.ID, r.GuestID, r.PropertyID, r.PaymentID, r.RoomIDs, stay, status, r.CreatedAt, r.UpdatedAt,
	), nil
}
