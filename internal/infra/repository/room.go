package repository

import (
	"context"
	"time"

	"staybook/internal/domain/property"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	createRoom = `INSERT INTO rooms (id, property_id, room_type, capacity, price_cents, currency, price_rating, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	updateRoom = `UPDATE rooms
SET room_type = $2, capacity = $3, price_cents = $4, currency = $5, price_rating = $6, updated_at = $7
WHERE id = $1 AND updated_at = $8`

	roomExists = `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`

	deleteRoom = `DELETE FROM rooms WHERE id = $1`

	clearRoomFacilities = `DELETE FROM room_facilities WHERE room_id = $1`

	insertRoomFacilities = `INSERT INTO room_facilities (room_id, facility_id, presence)
SELECT $1, facility_id, TRUE FROM unnest($2::smallint[]) AS facility_id`
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, room *property.Room) error {
	_, err := tx.Exec(ctx, createRoom,
		room.ID(), room.PropertyID(), room.Type().String(), int32(room.Capacity()),
		room.Price().Cents(), room.Price().Currency(), room.PriceRating().String(),
		room.CreatedAt(), room.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return r.replaceFacilities(ctx, tx, room)
}

// Update rewrites the room and replaces its facility flags as a set. The
// write only lands if the stored row still carries seen as its updated_at.
func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, room *property.Room, seen time.Time) error {
	tag, err := tx.Exec(ctx, updateRoom,
		room.ID(), room.Type().String(), int32(room.Capacity()),
		room.Price().Cents(), room.Price().Currency(), room.PriceRating().String(), room.UpdatedAt(),
		seen,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, roomExists, room.ID()).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check room", err)
		}
		if !exists {
			return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("room changed since it was read", nil, infra.KindConflict)
	}
	return r.replaceFacilities(ctx, tx, room)
}

func (r *RoomRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteRoom, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) replaceFacilities(ctx context.Context, tx db.DBTX, room *property.Room) error {
	if _, err := tx.Exec(ctx, clearRoomFacilities, room.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear room facilities", err)
	}
	ids := converter.FacilityIDs(room.Amenities())
	if len(ids) == 0 {
		return nil
	}
	if _, err := tx.Exec(ctx, insertRoomFacilities, room.ID(), ids); err != nil {
		return infra.WrapRepoErr("failed to save room facilities", err)
	}
	return nil
}
