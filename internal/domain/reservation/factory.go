package reservation

import (
	"staybook/internal/domain/booking"
	"staybook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// Materialize creates the confirmed reservation for a paid booking key.
func (f *Factory) Materialize(key booking.Key, paymentID uuid.UUID) *Reservation {
	now := f.Clock.Now()
	return &Reservation{
		id:         uuid.New(),
		guestID:    key.GuestID(),
		propertyID: key.PropertyID(),
		paymentID:  paymentID,
		roomIDs:    key.RoomIDs(),
		stay:       key.Stay(),
		status:     StatusConfirmed,
		createdAt:  now,
		updatedAt:  now,
	}
}
