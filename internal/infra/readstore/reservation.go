package readstore

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	reservationByID = `SELECT ` + converter.ReservationColumns + ` FROM reservations r WHERE r.id = $1`

	reservationViewByID = `SELECT r.id, r.guest_id, r.property_id, p.name, p.owner_id, r.payment_id,
    COALESCE((SELECT array_agg(rr.room_id ORDER BY rr.room_id) FROM reservation_rooms rr WHERE rr.reservation_id = r.id), '{}'),
    r.check_in, r.check_out, r.status, pay.amount_cents, pay.currency, r.created_at, r.updated_at
FROM reservations r
JOIN properties p ON p.id = r.property_id
JOIN payments pay ON pay.id = r.payment_id
WHERE r.id = $1`

	reservationsByGuest = `SELECT r.id, r.property_id, p.name, r.check_in, r.check_out, r.status,
    pay.amount_cents, pay.currency, r.created_at
FROM reservations r
JOIN properties p ON p.id = r.property_id
JOIN payments pay ON pay.id = r.payment_id
WHERE r.guest_id = $1
  AND ($2::timestamptz IS NULL OR (r.created_at, r.id) < ($2, $3))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

	// Cancelled links are returned too so callers see the full history of the rooms.
	occupancy = `SELECT rr.room_id, lower(rr.stay), upper(rr.stay), NOT rr.active
FROM reservation_rooms rr
WHERE rr.room_id = ANY($1::uuid[]) AND rr.stay && daterange($2, $3, '[)')`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		v                 queries.ReservationView
		checkIn, checkOut pgtype.Date
	)
	err := r.db.QueryRow(ctx, reservationViewByID, id).Scan(
		&v.ID, &v.GuestID, &v.PropertyID, &v.PropertyName, &v.OwnerID, &v.PaymentID, &v.RoomIDs,
		&checkIn, &checkOut, &v.Status, &v.AmountCents, &v.Currency, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr("reservation", err)
	}
	v.CheckIn = pgconv.DateFromPgtype(checkIn)
	v.CheckOut = pgconv.DateFromPgtype(checkOut)
	return &v, nil
}

func (r *ReservationReadStore) FindByGuest(ctx context.Context, guestID uuid.UUID, after queries.Keyset, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByGuest, guestID, keysetTime(after), after.ID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			it                queries.ReservationListItem
			checkIn, checkOut pgtype.Date
		)
		if err := rows.Scan(&it.ID, &it.PropertyID, &it.PropertyName, &checkIn, &checkOut, &it.Status,
			&it.AmountCents, &it.Currency, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		it.CheckIn = pgconv.DateFromPgtype(checkIn)
		it.CheckOut = pgconv.DateFromPgtype(checkOut)
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return items, nil
}

func (r *ReservationReadStore) LoadReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := converter.ScanReservation(r.db.QueryRow(ctx, reservationByID, id))
	if err != nil {
		return nil, notFoundOr("reservation", err)
	}
	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationReadStore) Occupancy(ctx context.Context, roomIDs []uuid.UUID, stay booking.DateRange) ([]booking.Occupancy, error) {
	return scanOccupancy(ctx, r.db, roomIDs, stay)
}

func scanOccupancy(ctx context.Context, q db.DBTX, roomIDs []uuid.UUID, stay booking.DateRange) ([]booking.Occupancy, error) {
	rows, err := q.Query(ctx, occupancy, roomIDs,
		pgconv.DateToPgtype(stay.CheckIn()), pgconv.DateToPgtype(stay.CheckOut()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupancy", err)
	}
	defer rows.Close()

	var out []booking.Occupancy
	for rows.Next() {
		var (
			o        booking.Occupancy
			from, to pgtype.Date
		)
		if err := rows.Scan(&o.RoomID, &from, &to, &o.Cancelled); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy", err)
		}
		o.Stay, err = booking.NewDateRange(pgconv.DateFromPgtype(from), pgconv.DateFromPgtype(to))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt stay range", err, infra.KindDBFailure)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to query occupancy", err)
	}
	return out, nil
}
