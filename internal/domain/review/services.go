package review

import (
	"time"

	"staybook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	ReservationID uuid.UUID
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	Now           time.Time
}

type EligibilityChecker interface {
	CanPostReview(input EligibilityInput) error
}

// Stay is what eligibility needs to know about the reviewed reservation.
type Stay struct {
	GuestID    uuid.UUID
	PropertyID uuid.UUID
	Confirmed  bool
	CheckOut   time.Time
}

// CheckStay accepts only the guest's own confirmed stay at the property
// once its check-out date has passed.
func CheckStay(stay Stay, input EligibilityInput) error {
	if stay.GuestID != input.UserID || stay.PropertyID != input.PropertyID {
		return ErrReservationNotEligible
	}
	if !stay.Confirmed {
		return ErrReservationNotEligible
	}
	if input.Now.Before(stay.CheckOut) {
		return ErrReservationNotEligible
	}
	return nil
}
