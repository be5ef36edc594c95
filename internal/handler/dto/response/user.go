package response

import (
	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type PreferencesResponse struct {
	Personal      int   `json:"personal"`
	Facilities    int   `json:"facilities"`
	Cleanliness   int   `json:"cleanliness"`
	Comfort       int   `json:"comfort"`
	ValueForMoney int   `json:"value_for_money"`
	Location      int   `json:"location"`
	Wifi          int   `json:"wifi"`
	Total         int   `json:"total"`
	UpdatedAt     int64 `json:"updated_at"`
}

type FavoriteResponse struct {
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	Region       string    `json:"region"`
	CreatedAt    int64     `json:"created_at"`
}

type ProfileResponse struct {
	User        UserResponse         `json:"user"`
	Preferences *PreferencesResponse `json:"preferences,omitempty"`
	Favorites   []*FavoriteResponse  `json:"favorites"`
}

type ClusterRefreshResponse struct {
	Properties int `json:"properties"`
	Assigned   int `json:"assigned"`
}
