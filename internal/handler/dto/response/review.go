package response

import (
	"github.com/google/uuid"
)

type ReviewScoresResponse struct {
	Personal      int16 `json:"personal"`
	Facilities    int16 `json:"facilities"`
	Cleanliness   int16 `json:"cleanliness"`
	Comfort       int16 `json:"comfort"`
	ValueForMoney int16 `json:"value_for_money"`
	Location      int16 `json:"location"`
	Wifi          int16 `json:"wifi"`
}

type ReviewResponse struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	UserEmail     string               `json:"user_email"`
	PropertyID    uuid.UUID            `json:"property_id"`
	PropertyName  string               `json:"property_name"`
	ReservationID uuid.UUID            `json:"reservation_id"`
	Scores        ReviewScoresResponse `json:"scores"`
	Comment       string               `json:"comment"`
	CreatedAt     int64                `json:"created_at"`
	UpdatedAt     int64                `json:"updated_at"`
}

type ReviewListItemResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserEmail string               `json:"user_email"`
	Scores    ReviewScoresResponse `json:"scores"`
	Comment   string               `json:"comment"`
	CreatedAt int64                `json:"created_at"`
}
