package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"staybook/internal/domain/payment"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	eventReservationConfirmed = "reservation_confirmed"
	eventReservationCancelled = "reservation_cancelled"
	eventPaymentFailed        = "payment_failed"

	bookingEventKind = "booking_event"
)

type bookingEvent struct {
	Type          string      `json:"type"`
	PaymentID     uuid.UUID   `json:"payment_id"`
	ReservationID *uuid.UUID  `json:"reservation_id,omitempty"`
	GuestID       uuid.UUID   `json:"guest_id"`
	PropertyID    uuid.UUID   `json:"property_id"`
	RoomIDs       []uuid.UUID `json:"room_ids"`
	CheckIn       string      `json:"check_in"`
	CheckOut      string      `json:"check_out"`
	AmountCents   int64       `json:"amount_cents"`
	Currency      string      `json:"currency"`
	OccurredAt    time.Time   `json:"occurred_at"`
}

func newBookingEvent(eventType string, p *payment.Payment, reservationID uuid.UUID, now time.Time) bookingEvent {
	key := p.Key()
	ev := bookingEvent{
		Type:        eventType,
		PaymentID:   p.ID(),
		GuestID:     key.GuestID(),
		PropertyID:  key.PropertyID(),
		RoomIDs:     key.RoomIDs(),
		CheckIn:     key.Stay().CheckIn().Format(time.DateOnly),
		CheckOut:    key.Stay().CheckOut().Format(time.DateOnly),
		AmountCents: p.Amount().Cents(),
		Currency:    p.Amount().Currency(),
		OccurredAt:  now,
	}
	if reservationID != uuid.Nil {
		ev.ReservationID = &reservationID
	}
	return ev
}

// enqueue writes the event to the outbox in the caller's transaction.
func (uc *bookingUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, ev bookingEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), bookingEventKind, topic, payload, uc.now())
}

// reconcile records an event for operator follow-up. It never fails the caller.
func (uc *bookingUseCaseImpl) reconcile(ctx context.Context, ev shared.ReconciliationEvent) {
	ev.CreatedAt = uc.now()
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Reconciliation().Record(ctx, tx.DB(), ev)
	})
	if err != nil {
		uc.logger.Error("failed to record reconciliation event",
			slog.String("intent_id", ev.IntentID),
			slog.String("reason", string(ev.Reason)),
			slog.String("error", err.Error()))
	}
}
