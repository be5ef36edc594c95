package request

import (
	"staybook/internal/domain/amenity"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
)

type CreatePropertyRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Address      string  `json:"address" binding:"required"`
	PostalCode   string  `json:"postal_code" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	Region       string  `json:"region" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
	CheckInTime  string  `json:"check_in_time" binding:"required"`
	CheckOutTime string  `json:"check_out_time" binding:"required"`
	Stars        int     `json:"stars" binding:"min=0,max=5"`
	Type         string  `json:"type" binding:"required"`
	Description  string  `json:"description"`
}

func (r *CreatePropertyRequest) ToDomain() (property.Details, error) {
	t, err := property.ParseType(r.Type)
	if err != nil {
		return property.Details{}, err
	}
	return property.Details{
		Name:         r.Name,
		Address:      r.Address,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
		Region:       r.Region,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		Stars:        r.Stars,
		Type:         t,
		Description:  r.Description,
	}, nil
}

type UpdatePropertyRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=200"`
	Address      *string  `json:"address"`
	PostalCode   *string  `json:"postal_code"`
	Country      *string  `json:"country"`
	Region       *string  `json:"region"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	CheckInTime  *string  `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time"`
	Stars        *int     `json:"stars" binding:"omitempty,min=0,max=5"`
	Type         *string  `json:"type"`
	Description  *string  `json:"description"`
}

func (r *UpdatePropertyRequest) ToDomain() (property.DetailsPatch, error) {
	p := property.DetailsPatch{
		Name:         r.Name,
		Address:      r.Address,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
		Region:       r.Region,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		Stars:        r.Stars,
		Description:  r.Description,
	}
	if r.Type != nil {
		t, err := property.ParseType(*r.Type)
		if err != nil {
			return property.DetailsPatch{}, err
		}
		p.Type = &t
	}
	return p, nil
}

type CreateRoomRequest struct {
	Type       string   `json:"type" binding:"required"`
	Capacity   int      `json:"capacity" binding:"required,min=1"`
	PriceCents int64    `json:"price_cents" binding:"required,min=1"`
	Currency   string   `json:"currency" binding:"required,len=3"`
	Amenities  []string `json:"amenities"`
}

func (r *CreateRoomRequest) ToDomain() (property.RoomSpec, error) {
	t, err := property.ParseRoomType(r.Type)
	if err != nil {
		return property.RoomSpec{}, err
	}
	price, err := booking.NewMoney(r.PriceCents, r.Currency)
	if err != nil {
		return property.RoomSpec{}, err
	}
	set, err := amenity.ParseSet(r.Amenities)
	if err != nil {
		return property.RoomSpec{}, err
	}
	return property.RoomSpec{Type: t, Capacity: r.Capacity, Price: price, Amenities: set}, nil
}

// UpdateRoomRequest replaces the amenity set as a whole when amenities is
// present; price_cents and currency travel together.
type UpdateRoomRequest struct {
	Type       *string   `json:"type"`
	Capacity   *int      `json:"capacity" binding:"omitempty,min=1"`
	PriceCents *int64    `json:"price_cents" binding:"omitempty,min=1"`
	Currency   *string   `json:"currency" binding:"omitempty,len=3"`
	Amenities  *[]string `json:"amenities"`
}

func (r *UpdateRoomRequest) ToDomain() (property.RoomPatch, error) {
	p := property.RoomPatch{Capacity: r.Capacity}
	if r.Type != nil {
		t, err := property.ParseRoomType(*r.Type)
		if err != nil {
			return property.RoomPatch{}, err
		}
		p.Type = &t
	}
	if r.PriceCents != nil {
		currency := ""
		if r.Currency != nil {
			currency = *r.Currency
		}
		price, err := booking.NewMoney(*r.PriceCents, currency)
		if err != nil {
			return property.RoomPatch{}, err
		}
		p.Price = &price
	}
	if r.Amenities != nil {
		set, err := amenity.ParseSet(*r.Amenities)
		if err != nil {
			return property.RoomPatch{}, err
		}
		p.Amenities = &set
	}
	return p, nil
}
