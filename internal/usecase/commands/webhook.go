package commands

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/domain/payment"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"
)

// HandleWebhook is the asynchronous confirmation path. Unresolvable events
// are acknowledged and recorded for reconciliation; only transient failures
// are returned so the gateway redelivers.
func (uc *bookingUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ev, err := uc.verifier.Verify(payload, signature)
	if err != nil {
		return errs.Validation(errs.Wrap(err, "verify webhook signature"))
	}
	log := uc.logger.With(slog.String("event_id", ev.ID), slog.String("intent_id", ev.IntentID))

	if ev.Type != payment.EventIntentSucceeded {
		log.Debug("ignoring webhook event", slog.String("type", ev.Type))
		return nil
	}

	first, err := uc.deduper.FirstDelivery(ctx, ev.ID)
	if err != nil {
		// confirmIfPending is idempotent on its own; dedupe only saves work.
		log.Warn("webhook dedupe unavailable", slog.String("error", err.Error()))
		first = true
	}
	if !first {
		log.Info("duplicate webhook delivery")
		return nil
	}

	p, err := uc.lookupPayment(ctx, ev.IntentID)
	if err != nil {
		if errs.Is(err, ErrPaymentNotFound) {
			log.Error("webhook for unknown payment intent")
			uc.reconcile(ctx, shared.ReconciliationEvent{
				IntentID: ev.IntentID,
				EventID:  ev.ID,
				Reason:   shared.ReasonPaymentNotFound,
				Detail:   "no payment after lookup retries",
			})
			return nil
		}
		uc.forget(ctx, ev.ID)
		return err
	}

	if key := p.Key(); !key.MatchesMetadata(ev.Metadata) {
		log.Error("webhook metadata does not match the payment booking key",
			slog.String("payment_id", p.ID().String()))
		pid := p.ID()
		uc.reconcile(ctx, shared.ReconciliationEvent{
			IntentID:  ev.IntentID,
			EventID:   ev.ID,
			PaymentID: &pid,
			Reason:    shared.ReasonMetadataMismatch,
		})
		return nil
	}

	res, err := uc.confirmIfPending(ctx, p.ID())
	if err != nil {
		uc.forget(ctx, ev.ID)
		return err
	}
	log.Info("webhook processed",
		slog.String("payment_id", p.ID().String()),
		slog.String("status", res.Status.String()))
	return nil
}

// lookupPayment retries the intent lookup with a fixed delay; the webhook can
// arrive before the checkout transaction commits.
func (uc *bookingUseCaseImpl) lookupPayment(ctx context.Context, intentID string) (*payment.Payment, error) {
	attempts := max(uc.cfg.WebhookLookupAttempts, 1)
	for attempt := 1; ; attempt++ {
		p, err := uc.uow.CommandReads().PaymentByIntentID(ctx, intentID)
		if err == nil {
			return p, nil
		}
		if !errs.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		if attempt >= attempts {
			return nil, ErrPaymentNotFound
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(uc.cfg.WebhookLookupDelay):
		}
	}
}

func (uc *bookingUseCaseImpl) forget(ctx context.Context, eventID string) {
	if err := uc.deduper.Forget(context.WithoutCancel(ctx), eventID); err != nil {
		uc.logger.Warn("failed to release webhook dedupe key",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()))
	}
}
