package reservation

import (
	"errors"
	"time"

	"staybook/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrNotGuest            = errors.New("only the reservation's guest may cancel it")
	ErrNotCancellable      = errors.New("only confirmed reservations can be cancelled")
	ErrInsufficientNotice  = errors.New("cancellation is inside the minimum notice window")
	ErrReservationCanceled = errors.New("reservation is already cancelled")
)

type Reservation struct {
	id         uuid.UUID
	guestID    uuid.UUID
	propertyID uuid.UUID
	paymentID  uuid.UUID
	roomIDs    []uuid.UUID
	stay       booking.DateRange
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructReservation(
	id, guestID, propertyID, paymentID uuid.UUID,
	roomIDs []uuid.UUID,
	stay booking.DateRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		guestID:    guestID,
		propertyID: propertyID,
		paymentID:  paymentID,
		roomIDs:    roomIDs,
		stay:       stay,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// CheckCancellable validates a guest cancellation request against the
// minimum notice window, compared at date granularity.
func (r *Reservation) CheckCancellable(actorID uuid.UUID, now time.Time, minNoticeDays int) error {
	if actorID != r.guestID {
		return ErrNotGuest
	}
	if r.status == StatusCancelled {
		return ErrReservationCanceled
	}
	if r.status != StatusConfirmed {
		return ErrNotCancellable
	}
	if booking.DaysBetween(now, r.stay.CheckIn()) < minNoticeDays {
		return ErrInsufficientNotice
	}
	return nil
}

// Cancel is applied only after the gateway confirmed the refund.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrReservationCanceled
	}
	if r.status != StatusConfirmed {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// HasCompleted reports whether the guest has checked out by now.
func (r *Reservation) HasCompleted(now time.Time) bool {
	return r.IsActive() && !booking.Day(now).Before(r.stay.CheckOut())
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) GuestID() uuid.UUID      { return r.guestID }
func (r *Reservation) PropertyID() uuid.UUID   { return r.propertyID }
func (r *Reservation) PaymentID() uuid.UUID    { return r.paymentID }
func (r *Reservation) RoomIDs() []uuid.UUID    { return r.roomIDs }
func (r *Reservation) Stay() booking.DateRange { return r.stay }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
