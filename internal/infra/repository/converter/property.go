package converter

import (
	"time"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/pricing"
	"staybook/internal/domain/property"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const PropertyColumns = `id, owner_id, name, address, postal_code, country, region, latitude, longitude,
	check_in_time, check_out_time, stars, property_type, description, cluster_id, created_at, updated_at`

type PropertyRow struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Address      string
	PostalCode   string
	Country      string
	Region       string
	Latitude     float64
	Longitude    float64
	CheckInTime  string
	CheckOutTime string
	Stars        int16
	PropertyType string
	Description  string
	ClusterID    *int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ScanProperty(row pgx.Row) (PropertyRow, error) {
	var r PropertyRow
	err := row.Scan(&r.ID, &r.OwnerID, &r.Name, &r.Address, &r.PostalCode, &r.Country, &r.Region,
		&r.Latitude, &r.Longitude, &r.CheckInTime, &r.CheckOutTime, &r.Stars, &r.PropertyType,
		&r.Description, &r.ClusterID, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func PropertyToDomain(r PropertyRow) (*property.Property, error) {
	t, err := property.ParseType(r.PropertyType)
	if err != nil {
		return nil, err
	}
	d := property.Details{
		Name:         r.Name,
		Address:      r.Address,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
		Region:       r.Region,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		Stars:        int(r.Stars),
		Type:         t,
		Description:  r.Description,
	}
	var cluster *int
	if r.ClusterID != nil {
		c := int(*r.ClusterID)
		cluster = &c
	}
	return property.ReconstructProperty(r.ID, r.OwnerID, d, cluster, r.CreatedAt, r.UpdatedAt), nil
}

// RoomColumns expects the rooms table aliased as rm. Amenities come back as
// facility names.
const RoomColumns = `rm.id, rm.property_id, rm.room_type, rm.capacity, rm.price_cents, rm.currency, rm.price_rating,
	COALESCE((SELECT array_agg(f.name) FROM room_facilities rf JOIN facilities f ON f.id = rf.facility_id
	          WHERE rf.room_id = rm.id AND rf.presence), '{}'),
	rm.created_at, rm.updated_at`

type RoomRow struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	RoomType    string
	Capacity    int32
	PriceCents  int64
	Currency    string
	PriceRating string
	Amenities   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ScanRoom(row pgx.Row) (RoomRow, error) {
	var r RoomRow
	err := row.Scan(&r.ID, &r.PropertyID, &r.RoomType, &r.Capacity, &r.PriceCents, &r.Currency,
		&r.PriceRating, &r.Amenities, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func RoomToDomain(r RoomRow) (*property.Room, error) {
	rt, err := property.ParseRoomType(r.RoomType)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(r.PriceCents, r.Currency)
	if err != nil {
		return nil, err
	}
	amenities, err := amenity.ParseSet(r.Amenities)
	if err != nil {
		return nil, err
	}
	spec := property.RoomSpec{Type: rt, Capacity: int(r.Capacity), Price: price, Amenities: amenities}
	return property.ReconstructRoom(r.ID, r.PropertyID, spec, pricing.Label(r.PriceRating), r.CreatedAt, r.UpdatedAt), nil
}

// FacilityIDs lists the facility ids present in s; ids follow amenity order.
func FacilityIDs(s amenity.Set) []int16 {
	ids := make([]int16, 0, amenity.Count)
	for i, present := range s {
		if present {
			ids = append(ids, int16(i))
		}
	}
	return ids
}
