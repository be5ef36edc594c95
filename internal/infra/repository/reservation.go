package repository

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	// Row locks are taken in id order; callers pass sorted ids.
	lockRooms = `SELECT id FROM rooms WHERE id = ANY($1::uuid[]) ORDER BY id FOR UPDATE`

	overlappingRooms = `SELECT DISTINCT room_id FROM reservation_rooms
WHERE room_id = ANY($1::uuid[]) AND active AND stay && daterange($2::date, $3::date, '[)')
ORDER BY room_id`

	createReservation = `INSERT INTO reservations (id, guest_id, property_id, payment_id, check_in, check_out, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	createReservationRooms = `INSERT INTO reservation_rooms (reservation_id, room_id, stay, active)
SELECT $1, room_id, daterange($3::date, $4::date, '[)'), $5
FROM unnest($2::uuid[]) AS room_id`

	lockReservationByID = `SELECT ` + converter.ReservationColumns + ` FROM reservations r WHERE r.id = $1 FOR UPDATE OF r`

	updateReservation = `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`

	setReservationRoomsActive = `UPDATE reservation_rooms SET active = $2 WHERE reservation_id = $1`

	hasUpcomingStays = `SELECT EXISTS (
    SELECT 1 FROM reservations r
    WHERE r.property_id = $1
      AND r.status = 'confirmed'
      AND r.check_out > $2::date
      AND ($3::uuid IS NULL OR EXISTS (
          SELECT 1 FROM reservation_rooms rr WHERE rr.reservation_id = r.id AND rr.room_id = $3))
)`
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) LockRooms(ctx context.Context, tx db.DBTX, roomIDs []uuid.UUID) error {
	rows, err := tx.Query(ctx, lockRooms, roomIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to lock rooms", err)
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		locked++
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to lock rooms", err)
	}
	if locked != len(roomIDs) {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Overlapping(ctx context.Context, tx db.DBTX, roomIDs []uuid.UUID, stay booking.DateRange) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, overlappingRooms, roomIDs,
		pgconv.DateToPgtype(stay.CheckIn()), pgconv.DateToPgtype(stay.CheckOut()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check overlapping stays", err)
	}
	defer rows.Close()

	var taken []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping room", err)
		}
		taken = append(taken, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to check overlapping stays", err)
	}
	return taken, nil
}

// Create inserts the reservation and its room links. An exclusion
// violation on the links comes back as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	stay := res.Stay()
	checkIn, checkOut := pgconv.DateToPgtype(stay.CheckIn()), pgconv.DateToPgtype(stay.CheckOut())

	_, err := tx.Exec(ctx, createReservation,
		res.ID(), res.GuestID(), res.PropertyID(), res.PaymentID(), checkIn, checkOut,
		res.Status().String(), res.CreatedAt(), res.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	_, err = tx.Exec(ctx, createReservationRooms, res.ID(), res.RoomIDs(), checkIn, checkOut, res.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to link reservation rooms", err)
	}
	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := converter.ScanReservation(tx.QueryRow(ctx, lockReservationByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	tag, err := tx.Exec(ctx, updateReservation, res.ID(), res.Status().String(), res.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	if _, err := tx.Exec(ctx, setReservationRoomsActive, res.ID(), res.IsActive()); err != nil {
		return infra.WrapRepoErr("failed to update reservation rooms", err)
	}
	return nil
}

func (r *ReservationRepository) HasUpcomingStays(ctx context.Context, tx db.DBTX, propertyID uuid.UUID, roomID *uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, hasUpcomingStays, propertyID, pgconv.DateToPgtype(now), pgconv.UUIDPtrToPgtype(roomID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check upcoming stays", err)
	}
	return exists, nil
}
