package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/payment"
	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Cancel refunds first and records the cancellation only after the gateway
// confirmed the refund.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, reservationID uuid.UUID, actorID uuid.UUID) error {
	reads := uc.uow.CommandReads()
	res, err := reads.ReservationByID(ctx, reservationID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return errs.NotFound(ErrReservationNotFound)
		}
		return err
	}

	if err := res.CheckCancellable(actorID, uc.now(), uc.cfg.MinCancellationNoticeDays); err != nil {
		if errs.Is(err, reservation.ErrNotGuest) {
			return errs.Forbidden(err)
		}
		return errs.Validation(err)
	}

	p, err := reads.PaymentByID(ctx, res.PaymentID())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return errs.NotFound(ErrPaymentNotFound)
		}
		return err
	}

	gwCtx, cancel := uc.gatewayContext(ctx)
	status, err := uc.gateway.Refund(gwCtx, p.IntentID())
	cancel()
	if err != nil {
		return errs.Gateway(errs.Wrap(err, "refund payment"))
	}
	if status != payment.RefundSucceeded {
		// The gateway accepted the refund; a retry would be rejected as
		// already refunded, so an operator settles the reservation.
		pid := p.ID()
		uc.logger.Warn("refund not settled at cancellation",
			slog.String("reservation_id", reservationID.String()),
			slog.String("intent_id", p.IntentID()),
			slog.String("refund_status", string(status)))
		uc.reconcile(ctx, shared.ReconciliationEvent{
			IntentID:  p.IntentID(),
			PaymentID: &pid,
			Reason:    shared.ReasonRefundPending,
			Detail:    "cancellation of reservation " + reservationID.String() + " left confirmed, refund status " + string(status),
		})
		return errs.Gateway(errs.Wrapf(ErrRefundNotSucceeded, "refund status %s", status))
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reservations().LockByID(ctx, tx.DB(), reservationID)
		if err != nil {
			return err
		}
		if err := locked.Cancel(uc.now()); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), locked); err != nil {
			return err
		}

		lp, err := tx.Payments().LockByID(ctx, tx.DB(), locked.PaymentID())
		if err != nil {
			return err
		}
		if err := lp.Refund(uc.now()); err != nil {
			return err
		}
		if err := tx.Payments().Update(ctx, tx.DB(), lp); err != nil {
			return err
		}
		return uc.enqueue(ctx, tx, eventReservationCancelled, newBookingEvent(eventReservationCancelled, lp, locked.ID(), uc.now()))
	})
	if err != nil {
		pid := p.ID()
		uc.logger.Error("refund issued but cancellation not saved",
			slog.String("reservation_id", reservationID.String()),
			slog.String("intent_id", p.IntentID()),
			slog.String("error", err.Error()))
		uc.reconcile(ctx, shared.ReconciliationEvent{
			IntentID:  p.IntentID(),
			PaymentID: &pid,
			Reason:    shared.ReasonCancelNotSaved,
			Detail:    err.Error(),
		})
		return err
	}
	return nil
}
