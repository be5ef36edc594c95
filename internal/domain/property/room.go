package property

import (
	"time"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/pricing"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingProperty = errs.New("room must belong to a property")
	ErrInvalidCapacity = errs.New("room capacity must be at least 1")
	ErrZeroPrice       = errs.New("room price must be positive")
)

type RoomSpec struct {
	Type      RoomType
	Capacity  int
	Price     booking.Money
	Amenities amenity.Set
}

type RoomPatch struct {
	Type      *RoomType
	Capacity  *int
	Price     *booking.Money
	Amenities *amenity.Set
}

type Room struct {
	id          uuid.UUID
	propertyID  uuid.UUID
	spec        RoomSpec
	priceRating pricing.Label
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRoom returns an unrated room; callers classify it before persisting.
func NewRoom(propertyID uuid.UUID, spec RoomSpec, now time.Time) (*Room, error) {
	if propertyID == uuid.Nil {
		return nil, ErrMissingProperty
	}
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	return &Room{
		id:         uuid.New(),
		propertyID: propertyID,
		spec:       spec,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRoom(id, propertyID uuid.UUID, spec RoomSpec, priceRating pricing.Label, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		propertyID:  propertyID,
		spec:        spec,
		priceRating: priceRating,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update applies p and reports whether any feature the price model reads
// (type, capacity, price or amenities) changed.
func (r *Room) Update(p RoomPatch, now time.Time) (bool, error) {
	next := r.spec
	if p.Type != nil {
		next.Type = *p.Type
	}
	if p.Capacity != nil {
		next.Capacity = *p.Capacity
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Amenities != nil {
		next.Amenities = *p.Amenities
	}
	if err := validateSpec(next); err != nil {
		return false, err
	}
	changed := next != r.spec
	r.spec = next
	if changed {
		r.updatedAt = now
	}
	return changed, nil
}

func (r *Room) SetPriceRating(label pricing.Label) {
	r.priceRating = label
}

// Bookable projects the room into the availability engine's view.
func (r *Room) Bookable() booking.Room {
	return booking.Room{ID: r.id, Capacity: r.spec.Capacity, Price: r.spec.Price}
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) PropertyID() uuid.UUID      { return r.propertyID }
func (r *Room) Spec() RoomSpec             { return r.spec }
func (r *Room) Type() RoomType             { return r.spec.Type }
func (r *Room) Capacity() int              { return r.spec.Capacity }
func (r *Room) Price() booking.Money       { return r.spec.Price }
func (r *Room) Amenities() amenity.Set     { return r.spec.Amenities }
func (r *Room) PriceRating() pricing.Label { return r.priceRating }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }

func validateSpec(s RoomSpec) error {
	if _, err := ParseRoomType(string(s.Type)); err != nil {
		return err
	}
	if s.Capacity < 1 {
		return ErrInvalidCapacity
	}
	if s.Price.Cents() <= 0 {
		return ErrZeroPrice
	}
	return nil
}
