package queries

import (
	"time"

	"github.com/google/uuid"
)

// RatingSummary holds per-category review averages for a property.
type RatingSummary struct {
	TotalReviews  int32   `json:"total_reviews"`
	Personal      float64 `json:"personal"`
	Facilities    float64 `json:"facilities"`
	Cleanliness   float64 `json:"cleanliness"`
	Comfort       float64 `json:"comfort"`
	ValueForMoney float64 `json:"value_for_money"`
	Location      float64 `json:"location"`
	Wifi          float64 `json:"wifi"`
}

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	Type        string    `json:"type"`
	Capacity    int32     `json:"capacity"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	PriceRating string    `json:"price_rating"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PropertyView struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	PostalCode   string        `json:"postal_code"`
	Country      string        `json:"country"`
	Region       string        `json:"region"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	CheckInTime  string        `json:"check_in_time"`
	CheckOutTime string        `json:"check_out_time"`
	Stars        int16         `json:"stars"`
	Type         string        `json:"type"`
	Description  string        `json:"description"`
	ClusterID    *int32        `json:"cluster_id,omitempty"`
	Ratings      RatingSummary `json:"ratings"`
	Rooms        []*RoomView   `json:"rooms"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type PropertyListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	Stars     int16     `json:"stars"`
	Type      string    `json:"type"`
	RoomCount int32     `json:"room_count"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationView struct {
	ID           uuid.UUID   `json:"id"`
	GuestID      uuid.UUID   `json:"guest_id"`
	PropertyID   uuid.UUID   `json:"property_id"`
	PropertyName string      `json:"property_name"`
	OwnerID      uuid.UUID   `json:"owner_id"`
	PaymentID    uuid.UUID   `json:"payment_id"`
	RoomIDs      []uuid.UUID `json:"room_ids"`
	CheckIn      time.Time   `json:"check_in"`
	CheckOut     time.Time   `json:"check_out"`
	Status       string      `json:"status"`
	AmountCents  int64       `json:"amount_cents"`
	Currency     string      `json:"currency"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	AmountCents  int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID   `json:"id"`
	GuestID       uuid.UUID   `json:"guest_id"`
	IntentID      string      `json:"intent_id"`
	PropertyID    uuid.UUID   `json:"property_id"`
	RoomIDs       []uuid.UUID `json:"room_ids"`
	CheckIn       time.Time   `json:"check_in"`
	CheckOut      time.Time   `json:"check_out"`
	AmountCents   int64       `json:"amount_cents"`
	Currency      string      `json:"currency"`
	Status        string      `json:"status"`
	ReservationID *uuid.UUID  `json:"reservation_id,omitempty"`
	FailureReason string      `json:"failure_reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type ReviewScores struct {
	Personal      int16 `json:"personal"`
	Facilities    int16 `json:"facilities"`
	Cleanliness   int16 `json:"cleanliness"`
	Comfort       int16 `json:"comfort"`
	ValueForMoney int16 `json:"value_for_money"`
	Location      int16 `json:"location"`
	Wifi          int16 `json:"wifi"`
}

type ReviewView struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	UserEmail     string       `json:"user_email"`
	PropertyID    uuid.UUID    `json:"property_id"`
	PropertyName  string       `json:"property_name"`
	ReservationID uuid.UUID    `json:"reservation_id"`
	Scores        ReviewScores `json:"scores"`
	Comment       string       `json:"comment"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type ReviewListItem struct {
	ID        uuid.UUID    `json:"id"`
	UserEmail string       `json:"user_email"`
	Scores    ReviewScores `json:"scores"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type PreferencesView struct {
	Personal      int       `json:"personal"`
	Facilities    int       `json:"facilities"`
	Cleanliness   int       `json:"cleanliness"`
	Comfort       int       `json:"comfort"`
	ValueForMoney int       `json:"value_for_money"`
	Location      int       `json:"location"`
	Wifi          int       `json:"wifi"`
	Total         int       `json:"total"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type FavoriteItem struct {
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	Region       string    `json:"region"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProfileView struct {
	User        UserView         `json:"user"`
	Preferences *PreferencesView `json:"preferences,omitempty"`
	Favorites   []*FavoriteItem  `json:"favorites"`
}
