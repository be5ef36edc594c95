package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Confirm is the synchronous confirmation path. It asks the gateway for the
// intent status and, once paid, converges with the webhook path on
// confirmIfPending.
func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, paymentID uuid.UUID, guestID uuid.UUID) (*ConfirmResult, error) {
	p, err := uc.uow.CommandReads().PaymentByID(ctx, paymentID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrPaymentNotFound)
		}
		return nil, err
	}
	if !p.BelongsTo(guestID) {
		return nil, errs.Forbidden(ErrPaymentNotOwned)
	}

	switch p.Status() {
	case payment.StatusSucceeded, payment.StatusRefunded:
		return resultFrom(p), nil
	case payment.StatusFailed:
		return nil, errs.Conflict(ErrPaymentFailed)
	}

	gwCtx, cancel := uc.gatewayContext(ctx)
	intent, err := uc.gateway.RetrieveIntent(gwCtx, p.IntentID())
	cancel()
	if err != nil {
		return nil, errs.Gateway(errs.Wrap(err, "retrieve payment intent"))
	}

	switch intent.Status {
	case payment.IntentSucceeded:
	case payment.IntentCanceled:
		return nil, uc.abandon(ctx, p.ID())
	default:
		return resultFrom(p), nil
	}

	res, err := uc.confirmIfPending(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	if res.Status == payment.StatusFailed {
		return nil, errs.Conflict(ErrPaymentFailed)
	}
	return res, nil
}

// confirmIfPending is the single transition shared by both confirmation
// paths. The payment row lock makes it idempotent; the ordered room locks
// plus the overlap re-check serialize confirmations over the same rooms.
func (uc *bookingUseCaseImpl) confirmIfPending(ctx context.Context, paymentID uuid.UUID) (*ConfirmResult, error) {
	var (
		result   *ConfirmResult
		lost     bool
		intentID string
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lost = false
		p, err := tx.Payments().LockByID(ctx, tx.DB(), paymentID)
		if err != nil {
			return err
		}
		intentID = p.IntentID()
		if !p.IsPending() {
			result = resultFrom(p)
			return nil
		}

		key := p.Key()
		if err := tx.Reservations().LockRooms(ctx, tx.DB(), key.RoomIDs()); err != nil {
			return err
		}
		taken, err := tx.Reservations().Overlapping(ctx, tx.DB(), key.RoomIDs(), key.Stay())
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			lost = true
			result, err = uc.failPayment(ctx, tx, p)
			return err
		}

		res := uc.factory.Materialize(key, p.ID())
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		if err := p.Succeed(res.ID(), uc.now()); err != nil {
			return err
		}
		if err := tx.Payments().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		result = resultFrom(p)
		return uc.enqueue(ctx, tx, eventReservationConfirmed, newBookingEvent(eventReservationConfirmed, p, res.ID(), uc.now()))
	})

	// A concurrent confirmation committed between the overlap check and the
	// insert, and the exclusion constraint rejected ours.
	if err != nil && infra.IsKind(err, infra.KindConflict) {
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			p, err := tx.Payments().LockByID(ctx, tx.DB(), paymentID)
			if err != nil {
				return err
			}
			if !p.IsPending() {
				lost = false
				result = resultFrom(p)
				return nil
			}
			lost = true
			result, err = uc.failPayment(ctx, tx, p)
			return err
		})
	}
	if err != nil {
		return nil, err
	}

	if lost {
		uc.logger.Warn("booking lost to a concurrent confirmation",
			slog.String("payment_id", paymentID.String()),
			slog.String("intent_id", intentID))
		uc.compensate(ctx, paymentID, intentID)
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) failPayment(ctx context.Context, tx shared.Tx, p *payment.Payment) (*ConfirmResult, error) {
	if err := p.Fail(booking.ErrRoomsUnavailable.Error(), uc.now()); err != nil {
		return nil, err
	}
	if err := tx.Payments().Update(ctx, tx.DB(), p); err != nil {
		return nil, err
	}
	if err := uc.enqueue(ctx, tx, eventPaymentFailed, newBookingEvent(eventPaymentFailed, p, uuid.Nil, uc.now())); err != nil {
		return nil, err
	}
	return resultFrom(p), nil
}

// abandon fails a pending payment whose intent the gateway cancelled. No
// charge was taken, so nothing is refunded.
func (uc *bookingUseCaseImpl) abandon(ctx context.Context, paymentID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().LockByID(ctx, tx.DB(), paymentID)
		if err != nil {
			return err
		}
		if !p.IsPending() {
			return nil
		}
		if err := p.Fail("payment intent canceled", uc.now()); err != nil {
			return err
		}
		return tx.Payments().Update(ctx, tx.DB(), p)
	})
	if err != nil {
		return err
	}
	return errs.Gateway(errs.New("payment intent was canceled"))
}

// compensate refunds a charge whose booking was lost. Failures are left for
// an operator; the guest already receives the conflict.
func (uc *bookingUseCaseImpl) compensate(ctx context.Context, paymentID uuid.UUID, intentID string) {
	ctx = context.WithoutCancel(ctx)
	gwCtx, cancel := uc.gatewayContext(ctx)
	status, err := uc.gateway.Refund(gwCtx, intentID)
	cancel()
	if err == nil && status != payment.RefundSucceeded {
		err = errs.Wrapf(ErrRefundNotSucceeded, "refund status %s", status)
	}
	if err != nil {
		uc.logger.Error("compensating refund failed",
			slog.String("payment_id", paymentID.String()),
			slog.String("intent_id", intentID),
			slog.String("error", err.Error()))
		uc.reconcile(ctx, shared.ReconciliationEvent{
			IntentID:  intentID,
			PaymentID: &paymentID,
			Reason:    shared.ReasonRefundFailed,
			Detail:    err.Error(),
		})
		return
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().LockByID(ctx, tx.DB(), paymentID)
		if err != nil {
			return err
		}
		if err := p.Refund(uc.now()); err != nil {
			return err
		}
		return tx.Payments().Update(ctx, tx.DB(), p)
	})
	if err != nil {
		uc.logger.Error("refund issued but payment not marked refunded",
			slog.String("payment_id", paymentID.String()),
			slog.String("intent_id", intentID),
			slog.String("error", err.Error()))
		uc.reconcile(ctx, shared.ReconciliationEvent{
			IntentID:  intentID,
			PaymentID: &paymentID,
			Reason:    shared.ReasonRefundFailed,
			Detail:    "refund succeeded at gateway: " + err.Error(),
		})
	}
}
