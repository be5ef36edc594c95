//go:build unit

package property_test

import (
	"testing"
	"time"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/pricing"
	"staybook/internal/domain/property"
	"staybook/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func validDetails() property.Details {
	return property.Details{
		Name:      "Casa Sfatului",
		Address:   "Piata Sfatului 1",
		Country:   "Romania",
		Region:    "Brasov",
		Latitude:  45.64,
		Longitude: 25.58,
		Stars:     4,
		Type:      property.TypeGuesthouse,
	}
}

func TestNewProperty(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*property.Details)
		errIs  error
	}{
		{name: "valid", mutate: func(*property.Details) {}},
		{name: "empty name", mutate: func(d *property.Details) { d.Name = "  " }, errIs: property.ErrEmptyName},
		{name: "missing region", mutate: func(d *property.Details) { d.Region = "" }, errIs: property.ErrEmptyRegion},
		{name: "zero stars", mutate: func(d *property.Details) { d.Stars = 0 }, errIs: property.ErrInvalidStars},
		{name: "six stars", mutate: func(d *property.Details) { d.Stars = 6 }, errIs: property.ErrInvalidStars},
		{name: "unknown type", mutate: func(d *property.Details) { d.Type = "castle" }, errIs: property.ErrInvalidPropertyType},
		{name: "latitude out of range", mutate: func(d *property.Details) { d.Latitude = 91 }, errIs: property.ErrInvalidLocation},
		{name: "bad check-in time", mutate: func(d *property.Details) { d.CheckInTime = "25:00" }, errIs: property.ErrInvalidClockTime},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDetails()
			tc.mutate(&d)
			p, err := property.NewProperty(uuid.New(), d, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "14:00", p.Details().CheckInTime)
			assert.Equal(t, "11:00", p.Details().CheckOutTime)
			assert.Nil(t, p.ClusterID())
		})
	}

	t.Run("missing owner", func(t *testing.T) {
		_, err := property.NewProperty(uuid.Nil, validDetails(), now)
		assert.ErrorIs(t, err, property.ErrMissingOwner)
	})
}

func TestProperty_Update(t *testing.T) {
	owner := uuid.New()
	p, err := property.NewProperty(owner, validDetails(), now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, p.Update(property.DetailsPatch{Stars: ptr.Of(5), Description: ptr.Of("renovated")}, later))
	assert.Equal(t, 5, p.Stars())
	assert.Equal(t, "renovated", p.Details().Description)
	assert.Equal(t, "Casa Sfatului", p.Details().Name)
	assert.Equal(t, later, p.UpdatedAt())

	err = p.Update(property.DetailsPatch{Stars: ptr.Of(0)}, later)
	require.ErrorIs(t, err, property.ErrInvalidStars)
	assert.Equal(t, 5, p.Stars(), "failed update leaves state untouched")

	assert.True(t, p.IsOwnedBy(owner))
	assert.False(t, p.IsOwnedBy(uuid.New()))

	p.AssignCluster(3, later)
	require.NotNil(t, p.ClusterID())
	assert.Equal(t, 3, *p.ClusterID())
}

func TestRoom(t *testing.T) {
	price, err := booking.NewMoney(12000, "eur")
	require.NoError(t, err)
	spec := property.RoomSpec{
		Type:      property.RoomDouble,
		Capacity:  2,
		Price:     price,
		Amenities: amenity.NewSet(amenity.Breakfast, amenity.Balcony),
	}

	t.Run("validation", func(t *testing.T) {
		_, err := property.NewRoom(uuid.Nil, spec, now)
		assert.ErrorIs(t, err, property.ErrMissingProperty)

		bad := spec
		bad.Capacity = 0
		_, err = property.NewRoom(uuid.New(), bad, now)
		assert.ErrorIs(t, err, property.ErrInvalidCapacity)

		bad = spec
		bad.Type = "dorm"
		_, err = property.NewRoom(uuid.New(), bad, now)
		assert.ErrorIs(t, err, property.ErrInvalidRoomType)

		bad = spec
		bad.Price = booking.Money{}
		_, err = property.NewRoom(uuid.New(), bad, now)
		assert.ErrorIs(t, err, property.ErrZeroPrice)
	})

	t.Run("update reports feature changes", func(t *testing.T) {
		r, err := property.NewRoom(uuid.New(), spec, now)
		require.NoError(t, err)
		r.SetPriceRating(pricing.LabelFair)

		changed, err := r.Update(property.RoomPatch{Capacity: ptr.Of(2)}, now)
		require.NoError(t, err)
		assert.False(t, changed)

		newPrice, err := booking.NewMoney(15000, "eur")
		require.NoError(t, err)
		changed, err = r.Update(property.RoomPatch{Price: &newPrice}, now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, int64(15000), r.Price().Cents())

		set := amenity.NewSet(amenity.Heating)
		changed, err = r.Update(property.RoomPatch{Amenities: &set}, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, r.Amenities().Has(amenity.Heating))
		assert.False(t, r.Amenities().Has(amenity.Balcony))
	})

	t.Run("bookable projection", func(t *testing.T) {
		r, err := property.NewRoom(uuid.New(), spec, now)
		require.NoError(t, err)
		b := r.Bookable()
		assert.Equal(t, r.ID(), b.ID)
		assert.Equal(t, 2, b.Capacity)
		assert.Equal(t, price, b.Price)
	})
}
