package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

var ErrMissingIntent = errs.New("webhook event carries no payment intent")

// StripeGateway opens, retrieves and refunds payment intents.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(cfg config.Config) *StripeGateway {
	return newStripeGateway(cfg.Stripe.SecretKey, nil)
}

// backends overrides the API endpoints; nil uses Stripe's.
func newStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount booking.Money, metadata map[string]string) (*payment.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount.Cents()),
		Currency: stripe.String(strings.ToLower(amount.Currency())),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: create payment intent")
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*payment.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, errs.Wrapf(err, "stripe: retrieve payment intent %s", intentID)
	}
	return toIntent(pi), nil
}

// Refund refunds the full captured amount of the intent.
func (g *StripeGateway) Refund(ctx context.Context, intentID string) (payment.RefundStatus, error) {
	params := &stripe.RefundParams{PaymentIntent: stripe.String(intentID)}
	params.Context = ctx

	r, err := g.api.Refunds.New(params)
	if err != nil {
		return payment.RefundFailed, errs.Wrapf(err, "stripe: refund payment intent %s", intentID)
	}
	return payment.RefundStatus(r.Status), nil
}

func toIntent(pi *stripe.PaymentIntent) *payment.Intent {
	return &payment.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       payment.IntentStatus(pi.Status),
		Metadata:     pi.Metadata,
	}
}

// StripeWebhookVerifier checks the Stripe-Signature header against the
// endpoint secret before the payload is trusted.
type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(cfg config.Config) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: cfg.Stripe.WebhookSecret}
}

func (v *StripeWebhookVerifier) Verify(payload []byte, signature string) (*payment.WebhookEvent, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "stripe: construct event")
	}

	out := &payment.WebhookEvent{ID: ev.ID, Type: string(ev.Type)}
	if !strings.HasPrefix(out.Type, "payment_intent.") {
		return out, nil
	}
	if ev.Data == nil || len(ev.Data.Raw) == 0 {
		return nil, ErrMissingIntent
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
		return nil, errs.Wrap(err, "stripe: decode payment intent")
	}
	if pi.ID == "" {
		return nil, ErrMissingIntent
	}
	out.IntentID = pi.ID
	out.Metadata = pi.Metadata
	return out, nil
}
