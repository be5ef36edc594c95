package request

import (
	"staybook/internal/domain/preference"
	"staybook/internal/domain/rating"

	"github.com/google/uuid"
)

// PreferencesRequest states how much each rating category matters to the
// guest. The sum is capped by the configured ceiling; each weight must fit
// the SMALLINT column.
type PreferencesRequest struct {
	Personal      int `json:"personal" binding:"min=0,max=32767"`
	Facilities    int `json:"facilities" binding:"min=0,max=32767"`
	Cleanliness   int `json:"cleanliness" binding:"min=0,max=32767"`
	Comfort       int `json:"comfort" binding:"min=0,max=32767"`
	ValueForMoney int `json:"value_for_money" binding:"min=0,max=32767"`
	Location      int `json:"location" binding:"min=0,max=32767"`
	Wifi          int `json:"wifi" binding:"min=0,max=32767"`
}

func (r *PreferencesRequest) ToDomain() rating.Weights {
	return rating.Weights{
		rating.Personal:      r.Personal,
		rating.Facilities:    r.Facilities,
		rating.Cleanliness:   r.Cleanliness,
		rating.Comfort:       r.Comfort,
		rating.ValueForMoney: r.ValueForMoney,
		rating.Location:      r.Location,
		rating.Wifi:          r.Wifi,
	}
}

type UpdatePreferencesRequest struct {
	Personal      *int `json:"personal" binding:"omitempty,min=0,max=32767"`
	Facilities    *int `json:"facilities" binding:"omitempty,min=0,max=32767"`
	Cleanliness   *int `json:"cleanliness" binding:"omitempty,min=0,max=32767"`
	Comfort       *int `json:"comfort" binding:"omitempty,min=0,max=32767"`
	ValueForMoney *int `json:"value_for_money" binding:"omitempty,min=0,max=32767"`
	Location      *int `json:"location" binding:"omitempty,min=0,max=32767"`
	Wifi          *int `json:"wifi" binding:"omitempty,min=0,max=32767"`
}

func (r *UpdatePreferencesRequest) ToDomain() preference.Patch {
	return preference.Patch{
		Personal:      r.Personal,
		Facilities:    r.Facilities,
		Cleanliness:   r.Cleanliness,
		Comfort:       r.Comfort,
		ValueForMoney: r.ValueForMoney,
		Location:      r.Location,
		Wifi:          r.Wifi,
	}
}

type AddFavoriteRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
}
