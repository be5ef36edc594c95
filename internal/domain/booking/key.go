package booking

import (
	"bytes"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var ErrMissingReference = errors.New("booking key requires guest and property")

// Key identifies a prospective reservation before it exists: the payment
// carries it and the reservation is materialized from it.
type Key struct {
	guestID    uuid.UUID
	propertyID uuid.UUID
	roomIDs    []uuid.UUID
	stay       DateRange
}

func NewKey(guestID, propertyID uuid.UUID, roomIDs []uuid.UUID, stay DateRange) (Key, error) {
	if guestID == uuid.Nil || propertyID == uuid.Nil {
		return Key{}, ErrMissingReference
	}
	if stay.IsZero() {
		return Key{}, ErrInvalidDateRange
	}
	if len(roomIDs) == 0 {
		return Key{}, ErrEmptyRoomSet
	}
	ids := slices.Clone(roomIDs)
	// Sorted ids give every writer the same row-lock order.
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return Key{}, ErrDuplicateRoom
		}
	}
	return Key{guestID: guestID, propertyID: propertyID, roomIDs: ids, stay: stay}, nil
}

func (k Key) GuestID() uuid.UUID    { return k.guestID }
func (k Key) PropertyID() uuid.UUID { return k.propertyID }
func (k Key) Stay() DateRange       { return k.stay }

func (k Key) RoomIDs() []uuid.UUID {
	return slices.Clone(k.roomIDs)
}

// Metadata is the flat form attached to the gateway intent.
func (k Key) Metadata() map[string]string {
	ids := make([]string, len(k.roomIDs))
	for i, id := range k.roomIDs {
		ids[i] = id.String()
	}
	return map[string]string{
		"guest_id":    k.guestID.String(),
		"property_id": k.propertyID.String(),
		"room_ids":    strings.Join(ids, ","),
		"check_in":    k.stay.CheckIn().Format(dateLayout),
		"check_out":   k.stay.CheckOut().Format(dateLayout),
	}
}

// MatchesMetadata checks that gateway metadata describes this key.
func (k Key) MatchesMetadata(md map[string]string) bool {
	want := k.Metadata()
	for field, v := range want {
		if md[field] != v {
			return false
		}
	}
	return true
}
