package shared

import (
	"time"

	"github.com/google/uuid"
)

// PricingContext is the property-level part of a room's price features.
type PricingContext struct {
	PropertyID   uuid.UUID
	OwnerID      uuid.UUID
	PropertyType string
	Region       string
	Stars        int
	ReviewCount  int
}

// Minimal snapshot for command read operations
type ReviewSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	ReservationID uuid.UUID
	Scores        [7]int
	Comment       string
	CreatedAt     time.Time
}

type ReconciliationReason string

const (
	ReasonPaymentNotFound  ReconciliationReason = "payment_not_found"
	ReasonMetadataMismatch ReconciliationReason = "metadata_mismatch"
	ReasonRefundFailed     ReconciliationReason = "refund_failed"
	ReasonRefundPending    ReconciliationReason = "refund_pending"
	ReasonCancelNotSaved   ReconciliationReason = "cancel_not_saved"
)

// ReconciliationEvent is an unresolved payment situation left for an operator.
type ReconciliationEvent struct {
	IntentID  string
	EventID   string
	PaymentID *uuid.UUID
	Reason    ReconciliationReason
	Detail    string
	CreatedAt time.Time
}
