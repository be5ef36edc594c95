//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	h, err := pricing.NewTolerance(10)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		actual float64
		want   pricing.Label
	}{
		{name: "equal to prediction", actual: 100, want: pricing.LabelFair},
		{name: "far below", actual: 75, want: pricing.LabelVeryGood},
		{name: "moderately above", actual: 125, want: pricing.LabelIncreased},
		{name: "far above", actual: 140, want: pricing.LabelHigh},
		{name: "lower edge of good band", actual: 80, want: pricing.LabelGood},
		{name: "just below good band", actual: 79.99, want: pricing.LabelVeryGood},
		{name: "lower edge of fair band", actual: 90, want: pricing.LabelFair},
		{name: "just below fair band", actual: 89.99, want: pricing.LabelGood},
		{name: "upper edge of fair band", actual: 110, want: pricing.LabelFair},
		{name: "just above fair band", actual: 110.01, want: pricing.LabelIncreased},
		{name: "upper edge of increased band", actual: 120, want: pricing.LabelIncreased},
		{name: "just above increased band", actual: 120.01, want: pricing.LabelHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.Classify(100, tc.actual, h))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	h, err := pricing.NewTolerance(7.5)
	require.NoError(t, err)
	first := pricing.Classify(212.4, 199, h)
	for range 5 {
		assert.Equal(t, first, pricing.Classify(212.4, 199, h))
	}
	assert.True(t, first.IsValid())
}

func TestClassify_ZeroTolerance(t *testing.T) {
	h, err := pricing.NewTolerance(0)
	require.NoError(t, err)
	assert.Equal(t, pricing.LabelFair, pricing.Classify(100, 100, h))
	assert.Equal(t, pricing.LabelVeryGood, pricing.Classify(100, 99, h))
	assert.Equal(t, pricing.LabelHigh, pricing.Classify(100, 101, h))
}

func TestNewTolerance(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := pricing.NewTolerance(bad)
		assert.ErrorIs(t, err, pricing.ErrInvalidTolerance)
	}
}

func TestSchema(t *testing.T) {
	schema := pricing.Schema{
		PropertyTypes: []string{"hotel", "apartment"},
		Regions:       []string{"Brasov", "Cluj"},
		RoomTypes:     []string{"double", "suite", "single"},
	}

	cols := schema.Columns()
	require.Len(t, cols, schema.Width())
	assert.Equal(t, []string{"capacity", "stars", "review_count", "property_type=hotel", "property_type=apartment", "region=brasov", "region=cluj", "room_type=double"}, cols[:8])
	assert.Equal(t, "amenity=breakfast", cols[3+2+2+3])
	assert.Equal(t, "amenity=refrigerator", cols[len(cols)-1])

	t.Run("vector follows column order", func(t *testing.T) {
		v := schema.Vector(pricing.RoomFeatures{
			Capacity:     3,
			Stars:        4,
			ReviewCount:  120,
			PropertyType: "Apartment",
			Region:       "cluj",
			RoomType:     "suite",
			Amenities:    amenity.NewSet(amenity.Breakfast, amenity.Refrigerator),
		})
		require.Len(t, v, schema.Width())
		assert.Equal(t, []float64{3, 4, 120, 0, 1, 0, 1, 0, 1, 0, 1}, v[:11])
		assert.Equal(t, float64(1), v[len(v)-1])
	})

	t.Run("unknown category encodes as zeros", func(t *testing.T) {
		v := schema.Vector(pricing.RoomFeatures{PropertyType: "castle", Region: "Iasi", RoomType: "single"})
		assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, v[:10])
	})

	t.Run("verify", func(t *testing.T) {
		assert.NoError(t, schema.Verify(schema.Columns()))
		reordered := append([]string{cols[1], cols[0]}, cols[2:]...)
		assert.ErrorIs(t, schema.Verify(reordered), pricing.ErrSchemaMismatch)
	})
}
