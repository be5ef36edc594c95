package response

import (
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	PaymentID    uuid.UUID `json:"payment_id"`
	IntentID     string    `json:"intent_id"`
	ClientSecret string    `json:"client_secret"`
	AmountCents  int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
	Nights       int       `json:"nights"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		PaymentID:    r.PaymentID,
		IntentID:     r.IntentID,
		ClientSecret: r.ClientSecret,
		AmountCents:  r.Amount.Cents(),
		Currency:     r.Amount.Currency(),
		Nights:       r.Nights,
	}
}

type ConfirmResponse struct {
	PaymentID     uuid.UUID  `json:"payment_id"`
	Status        string     `json:"status"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{
		PaymentID:     r.PaymentID,
		Status:        string(r.Status),
		ReservationID: r.ReservationID,
	}
}

type ReservationResponse struct {
	ID           uuid.UUID   `json:"id"`
	GuestID      uuid.UUID   `json:"guest_id"`
	PropertyID   uuid.UUID   `json:"property_id"`
	PropertyName string      `json:"property_name"`
	PaymentID    uuid.UUID   `json:"payment_id"`
	RoomIDs      []uuid.UUID `json:"room_ids"`
	CheckIn      string      `json:"check_in"`
	CheckOut     string      `json:"check_out"`
	Status       string      `json:"status"`
	AmountCents  int64       `json:"amount_cents"`
	Currency     string      `json:"currency"`
	CreatedAt    int64       `json:"created_at"`
	UpdatedAt    int64       `json:"updated_at"`
}

type ReservationListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	Status       string    `json:"status"`
	AmountCents  int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
	CreatedAt    int64     `json:"created_at"`
}

type PaymentResponse struct {
	ID            uuid.UUID   `json:"id"`
	IntentID      string      `json:"intent_id"`
	PropertyID    uuid.UUID   `json:"property_id"`
	RoomIDs       []uuid.UUID `json:"room_ids"`
	CheckIn       string      `json:"check_in"`
	CheckOut      string      `json:"check_out"`
	AmountCents   int64       `json:"amount_cents"`
	Currency      string      `json:"currency"`
	Status        string      `json:"status"`
	ReservationID *uuid.UUID  `json:"reservation_id,omitempty"`
	FailureReason string      `json:"failure_reason,omitempty"`
	CreatedAt     int64       `json:"created_at"`
	UpdatedAt     int64       `json:"updated_at"`
}

type SearchItemResponse struct {
	PropertyID  uuid.UUID   `json:"property_id"`
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	Stars       int         `json:"stars"`
	Type        string      `json:"type"`
	ClusterID   *int        `json:"cluster_id,omitempty"`
	RoomIDs     []uuid.UUID `json:"room_ids"`
	TotalCents  int64       `json:"total_cents"`
	Currency    string      `json:"currency"`
	Recommended bool        `json:"recommended"`
}

type RecommendationResponse struct {
	PropertyID      uuid.UUID   `json:"property_id"`
	Name            string      `json:"name"`
	Region          string      `json:"region"`
	Stars           int         `json:"stars"`
	Type            string      `json:"type"`
	ClusterID       *int        `json:"cluster_id,omitempty"`
	RoomIDs         []uuid.UUID `json:"room_ids"`
	TotalCents      int64       `json:"total_cents"`
	Currency        string      `json:"currency"`
	PreferenceScore float64     `json:"preference_score"`
	AffinityScore   int         `json:"affinity_score"`
	Score           float64     `json:"score"`
}

type SearchResponse struct {
	Recommended []*RecommendationResponse `json:"recommended"`
	Available   []*SearchItemResponse     `json:"available"`
}
