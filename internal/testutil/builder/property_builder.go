//go:build unit || integration

package builder

import (
	"time"

	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Region  string
	Type    string
	Stars   int
	Now     time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Casa Verde",
		Region:  "brasov",
		Type:    "guesthouse",
		Stars:   4,
		Now:     time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PropertyBuilder) WithOwnerID(id uuid.UUID) *PropertyBuilder {
	b.OwnerID = id
	return b
}

func (b *PropertyBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	return reqdto.CreatePropertyRequest{
		Name:         b.Name,
		Address:      "Strada Republicii 12",
		PostalCode:   "500030",
		Country:      "RO",
		Region:       b.Region,
		Latitude:     45.6427,
		Longitude:    25.5887,
		CheckInTime:  "14:00",
		CheckOutTime: "11:00",
		Stars:        b.Stars,
		Type:         b.Type,
		Description:  "Family-run guesthouse near the old town.",
	}
}

func (b *PropertyBuilder) BuildCreateRoomRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Type:       "double",
		Capacity:   2,
		PriceCents: 9000,
		Currency:   "EUR",
		Amenities:  []string{"desk", "air_conditioning"},
	}
}

func (b *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Address:      "Strada Republicii 12",
		PostalCode:   "500030",
		Country:      "RO",
		Region:       b.Region,
		CheckInTime:  "14:00",
		CheckOutTime: "11:00",
		Stars:        int16(b.Stars),
		Type:         b.Type,
		Rooms: []*queries.RoomView{{
			ID:          uuid.New(),
			PropertyID:  b.ID,
			Type:        "double",
			Capacity:    2,
			PriceCents:  9000,
			Currency:    "eur",
			PriceRating: "fair",
			Amenities:   []string{"desk"},
			CreatedAt:   b.Now,
			UpdatedAt:   b.Now,
		}},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}
