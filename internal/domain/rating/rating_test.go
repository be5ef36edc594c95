//go:build unit

package rating_test

import (
	"math"
	"testing"

	"staybook/internal/domain/rating"

	"github.com/stretchr/testify/assert"
)

func TestScoresDot(t *testing.T) {
	scores := rating.Scores{8, 7, 9, 6, 5, 10, 4}
	weights := rating.Weights{1, 0, 2, 0, 0, 3, 0}

	assert.InDelta(t, 8+18+30, scores.Dot(weights), 1e-9)
	assert.Zero(t, scores.Dot(rating.Weights{}))
}

func TestWeights(t *testing.T) {
	w := rating.Weights{10, 10, 10, 10, 5, 3, 2}
	assert.Equal(t, 50, w.Total())
	assert.False(t, w.IsZero())
	assert.True(t, rating.Weights{}.IsZero())
}

func TestWeightsTotal_Saturates(t *testing.T) {
	half := math.MaxInt/2 + 1

	testCases := []struct {
		name    string
		weights rating.Weights
		want    int
	}{
		{name: "two halves overflow upwards", weights: rating.Weights{half, half}, want: math.MaxInt},
		{name: "max plus more stays at max", weights: rating.Weights{math.MaxInt, 1, 1}, want: math.MaxInt},
		{name: "large negatives stay at min", weights: rating.Weights{math.MinInt, -1}, want: math.MinInt},
		{name: "mixed signs within range", weights: rating.Weights{math.MaxInt, -5, 3}, want: math.MaxInt - 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.weights.Total())
		})
	}
}

func TestCategoryNames(t *testing.T) {
	got := make([]string, 0, rating.CategoryCount)
	for _, c := range rating.Categories() {
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"personal", "facilities", "cleanliness", "comfort", "value_for_money", "location", "wifi"}, got)
}
