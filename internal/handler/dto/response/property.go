package response

import (
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type RatingSummaryResponse struct {
	TotalReviews  int32   `json:"total_reviews"`
	Personal      float64 `json:"personal"`
	Facilities    float64 `json:"facilities"`
	Cleanliness   float64 `json:"cleanliness"`
	Comfort       float64 `json:"comfort"`
	ValueForMoney float64 `json:"value_for_money"`
	Location      float64 `json:"location"`
	Wifi          float64 `json:"wifi"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	Type        string    `json:"type"`
	Capacity    int32     `json:"capacity"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	PriceRating string    `json:"price_rating"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   int64     `json:"created_at"`
	UpdatedAt   int64     `json:"updated_at"`
}

type PropertyResponse struct {
	ID           uuid.UUID             `json:"id"`
	OwnerID      uuid.UUID             `json:"owner_id"`
	Name         string                `json:"name"`
	Address      string                `json:"address"`
	PostalCode   string                `json:"postal_code"`
	Country      string                `json:"country"`
	Region       string                `json:"region"`
	Latitude     float64               `json:"latitude"`
	Longitude    float64               `json:"longitude"`
	CheckInTime  string                `json:"check_in_time"`
	CheckOutTime string                `json:"check_out_time"`
	Stars        int16                 `json:"stars"`
	Type         string                `json:"type"`
	Description  string                `json:"description"`
	ClusterID    *int32                `json:"cluster_id,omitempty"`
	Ratings      RatingSummaryResponse `json:"ratings"`
	Rooms        []*RoomResponse       `json:"rooms"`
	CreatedAt    int64                 `json:"created_at"`
	UpdatedAt    int64                 `json:"updated_at"`
}

type PropertyListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	Stars     int16     `json:"stars"`
	Type      string    `json:"type"`
	RoomCount int32     `json:"room_count"`
	CreatedAt int64     `json:"created_at"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// RoomSavedResponse reports the price rating assigned when the room was saved.
type RoomSavedResponse struct {
	RoomID      uuid.UUID `json:"room_id"`
	PriceRating string    `json:"price_rating"`
}

func FromRoomResult(r *commands.RoomResult) *RoomSavedResponse {
	return &RoomSavedResponse{RoomID: r.RoomID, PriceRating: r.PriceRating}
}
