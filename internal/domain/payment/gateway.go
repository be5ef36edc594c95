package payment

// IntentStatus mirrors the gateway's view of a payment intent.
type IntentStatus string

const (
	IntentSucceeded             IntentStatus = "succeeded"
	IntentProcessing            IntentStatus = "processing"
	IntentRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentRequiresConfirmation  IntentStatus = "requires_confirmation"
	IntentRequiresAction        IntentStatus = "requires_action"
	IntentCanceled              IntentStatus = "canceled"
)

type RefundStatus string

const (
	RefundSucceeded RefundStatus = "succeeded"
	RefundPending   RefundStatus = "pending"
	RefundFailed    RefundStatus = "failed"
	RefundCanceled  RefundStatus = "canceled"
)

const EventIntentSucceeded = "payment_intent.succeeded"

// Intent is what the gateway returns when an intent is opened or retrieved.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	Metadata     map[string]string
}

// WebhookEvent is a verified inbound gateway notification.
type WebhookEvent struct {
	ID       string
	Type     string
	IntentID string
	Metadata map[string]string
}
