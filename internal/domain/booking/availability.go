package booking

import (
	"errors"
	"slices"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrInsufficientCapacity = errors.New("free rooms cannot hold the requested number of guests")
	ErrEmptyRoomSet         = errors.New("at least one room is required")
	ErrDuplicateRoom        = errors.New("room listed more than once")
	ErrRoomsUnavailable     = errors.New("one or more rooms are already booked for these dates")
)

// Room is the availability view of a bookable room.
type Room struct {
	ID       uuid.UUID
	Capacity int
	Price    Money // per night
}

// Occupancy is one room link of an existing reservation.
type Occupancy struct {
	RoomID    uuid.UUID
	Stay      DateRange
	Cancelled bool
}

// Blocks reports whether the occupancy makes its room unavailable for stay.
func (o Occupancy) Blocks(stay DateRange) bool {
	return !o.Cancelled && o.Stay.Overlaps(stay)
}

// OccupiedRooms returns the ids of rooms blocked for stay, in first-seen order.
func OccupiedRooms(stay DateRange, existing []Occupancy) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, o := range existing {
		if !o.Blocks(stay) {
			continue
		}
		if _, dup := seen[o.RoomID]; dup {
			continue
		}
		seen[o.RoomID] = struct{}{}
		out = append(out, o.RoomID)
	}
	return out
}

// FreeRooms filters rooms down to those not blocked for stay, preserving order.
func FreeRooms(rooms []Room, stay DateRange, existing []Occupancy) []Room {
	occupied := OccupiedRooms(stay, existing)
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if !slices.Contains(occupied, r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// PackRooms picks rooms largest-capacity first until their total capacity
// reaches guests. Rooms of equal capacity keep their input order.
func PackRooms(free []Room, guests int) ([]Room, error) {
	if guests < 1 {
		guests = 1
	}
	sorted := slices.Clone(free)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity > sorted[j].Capacity
	})

	var picked []Room
	total := 0
	for _, r := range sorted {
		if total >= guests {
			break
		}
		picked = append(picked, r)
		total += r.Capacity
	}
	if total < guests {
		return nil, ErrInsufficientCapacity
	}
	return picked, nil
}

// Quote is Σ(room price × nights) across rooms.
func Quote(rooms []Room, stay DateRange) (Money, error) {
	if len(rooms) == 0 {
		return Money{}, ErrEmptyRoomSet
	}
	nights := stay.Nights()
	total := Money{currency: rooms[0].Price.Currency()}
	for _, r := range rooms {
		var err error
		total, err = total.Add(r.Price.Times(nights))
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

func TotalCapacity(rooms []Room) int {
	n := 0
	for _, r := range rooms {
		n += r.Capacity
	}
	return n
}
