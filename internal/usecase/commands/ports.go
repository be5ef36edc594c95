package commands

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/pricing"
	"staybook/internal/domain/rating"

	"github.com/google/uuid"
)

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount booking.Money, metadata map[string]string) (*payment.Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*payment.Intent, error)
	Refund(ctx context.Context, intentID string) (payment.RefundStatus, error)
}

type WebhookVerifier interface {
	Verify(payload []byte, signature string) (*payment.WebhookEvent, error)
}

// PriceModel predicts a nightly price from a room feature vector laid out by Schema.
type PriceModel interface {
	Predict(ctx context.Context, features []float64) (float64, error)
	Schema() pricing.Schema
	Tolerance() pricing.Tolerance
}

type ClusterModel interface {
	Predict(ctx context.Context, features []float64) (int, error)
}

// WebhookDeduper remembers gateway event ids already taken into processing.
type WebhookDeduper interface {
	FirstDelivery(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}

// ClusterInput is what the cluster refresh needs to know about one property.
type ClusterInput struct {
	PropertyID uuid.UUID
	Rooms      []booking.Room
	Ratings    rating.Scores
}

type ClusterSource interface {
	ClusterInputs(ctx context.Context) ([]ClusterInput, error)
}
