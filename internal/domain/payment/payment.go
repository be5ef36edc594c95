package payment

import (
	"errors"
	"time"

	"staybook/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid payment status")
	ErrInvalidTransition = errors.New("payment status transition not allowed")
	ErrMissingIntent     = errors.New("payment requires a gateway intent id")
	ErrZeroAmount        = errors.New("payment amount must be positive")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusRefunded  Status = "refunded"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSucceeded, StatusRefunded, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Payment is the precursor of a reservation. It is linked to the future
// reservation through the booking key, not a foreign key.
type Payment struct {
	id            uuid.UUID
	intentID      string
	amount        booking.Money
	key           booking.Key
	status        Status
	reservationID *uuid.UUID
	failureReason string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayment(intentID string, amount booking.Money, key booking.Key, now time.Time) (*Payment, error) {
	if intentID == "" {
		return nil, ErrMissingIntent
	}
	if amount.Cents() <= 0 {
		return nil, ErrZeroAmount
	}
	return &Payment{
		id:        uuid.New(),
		intentID:  intentID,
		amount:    amount,
		key:       key,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPayment(
	id uuid.UUID,
	intentID string,
	amount booking.Money,
	key booking.Key,
	status Status,
	reservationID *uuid.UUID,
	failureReason string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		intentID:      intentID,
		amount:        amount,
		key:           key,
		status:        status,
		reservationID: reservationID,
		failureReason: failureReason,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Succeed links the materialized reservation. Only a pending payment may succeed.
func (p *Payment) Succeed(reservationID uuid.UUID, now time.Time) error {
	if p.status != StatusPending {
		return ErrInvalidTransition
	}
	p.status = StatusSucceeded
	p.reservationID = &reservationID
	p.updatedAt = now
	return nil
}

func (p *Payment) Fail(reason string, now time.Time) error {
	if p.status != StatusPending {
		return ErrInvalidTransition
	}
	p.status = StatusFailed
	p.failureReason = reason
	p.updatedAt = now
	return nil
}

// Refund applies to a cancelled stay (succeeded) or to the compensating
// refund of a charge that lost the booking race (failed).
func (p *Payment) Refund(now time.Time) error {
	if p.status != StatusSucceeded && p.status != StatusFailed {
		return ErrInvalidTransition
	}
	p.status = StatusRefunded
	p.updatedAt = now
	return nil
}

func (p *Payment) IsPending() bool   { return p.status == StatusPending }
func (p *Payment) IsSucceeded() bool { return p.status == StatusSucceeded }

func (p *Payment) BelongsTo(guestID uuid.UUID) bool {
	return p.key.GuestID() == guestID
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) IntentID() string          { return p.intentID }
func (p *Payment) Amount() booking.Money     { return p.amount }
func (p *Payment) Key() booking.Key          { return p.key }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) ReservationID() *uuid.UUID { return p.reservationID }
func (p *Payment) FailureReason() string     { return p.failureReason }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time      { return p.updatedAt }
