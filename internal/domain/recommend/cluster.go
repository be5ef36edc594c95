package recommend

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/rating"
)

// ClusterFeatureWidth is the length of the vector the cluster model was
// trained on: mean room price followed by the category averages.
const ClusterFeatureWidth = 1 + rating.CategoryCount

// ClusterFeatures builds the cluster model input for a property. A property
// without rooms has a mean price of zero.
func ClusterFeatures(rooms []booking.Room, ratings rating.Scores) []float64 {
	v := make([]float64, 0, ClusterFeatureWidth)
	var mean float64
	if len(rooms) > 0 {
		var sum float64
		for _, r := range rooms {
			sum += r.Price.Major()
		}
		mean = sum / float64(len(rooms))
	}
	v = append(v, mean)
	for _, s := range ratings {
		v = append(v, s)
	}
	return v
}
