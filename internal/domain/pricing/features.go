package pricing

import (
	"errors"
	"slices"
	"strings"

	"staybook/internal/domain/amenity"
)

var ErrSchemaMismatch = errors.New("feature columns do not match the trained model")

// Numeric columns, in training order, ahead of the one-hot groups.
const (
	ColumnCapacity    = "capacity"
	ColumnStars       = "stars"
	ColumnReviewCount = "review_count"
)

// Schema fixes the categorical vocabularies seen at training time. The
// resulting column order is capacity, stars, review_count, then one-hot
// property_type, region and room_type groups, then the amenity flags.
type Schema struct {
	PropertyTypes []string
	Regions       []string
	RoomTypes     []string
}

// RoomFeatures is everything the price model needs about one room.
// A category outside the schema vocabulary encodes as all zeros in its group.
type RoomFeatures struct {
	Capacity     int
	Stars        int
	ReviewCount  int
	PropertyType string
	Region       string
	RoomType     string
	Amenities    amenity.Set
}

func (s Schema) Columns() []string {
	cols := []string{ColumnCapacity, ColumnStars, ColumnReviewCount}
	cols = appendGroup(cols, "property_type", s.PropertyTypes)
	cols = appendGroup(cols, "region", s.Regions)
	cols = appendGroup(cols, "room_type", s.RoomTypes)
	for _, a := range amenity.All() {
		cols = append(cols, "amenity="+a.String())
	}
	return cols
}

func (s Schema) Width() int {
	return 3 + len(s.PropertyTypes) + len(s.Regions) + len(s.RoomTypes) + amenity.Count
}

// Vector encodes f in Columns() order.
func (s Schema) Vector(f RoomFeatures) []float64 {
	v := make([]float64, 0, s.Width())
	v = append(v, float64(f.Capacity), float64(f.Stars), float64(f.ReviewCount))
	v = appendOneHot(v, s.PropertyTypes, f.PropertyType)
	v = appendOneHot(v, s.Regions, f.Region)
	v = appendOneHot(v, s.RoomTypes, f.RoomType)
	for _, present := range f.Amenities {
		if present {
			v = append(v, 1)
		} else {
			v = append(v, 0)
		}
	}
	return v
}

// Verify checks a model's declared column order against this schema.
func (s Schema) Verify(columns []string) error {
	if !slices.Equal(s.Columns(), columns) {
		return ErrSchemaMismatch
	}
	return nil
}

func appendGroup(cols []string, prefix string, values []string) []string {
	for _, v := range values {
		cols = append(cols, prefix+"="+normalize(v))
	}
	return cols
}

func appendOneHot(v []float64, vocab []string, value string) []float64 {
	n := normalize(value)
	for _, candidate := range vocab {
		if normalize(candidate) == n {
			v = append(v, 1)
		} else {
			v = append(v, 0)
		}
	}
	return v
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
