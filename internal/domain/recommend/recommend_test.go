//go:build unit

package recommend_test

import (
	"testing"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/rating"
	"staybook/internal/domain/recommend"
	"staybook/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eur(t *testing.T, cents int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(cents, "eur")
	require.NoError(t, err)
	return m
}

func stay(t *testing.T, in, out string) booking.DateRange {
	t.Helper()
	r, err := booking.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

// candidate builds a property with one room per capacity, each priced at cents per night.
func candidate(t *testing.T, region string, cluster *int, ratings rating.Scores, cents int64, capacities ...int) recommend.Candidate {
	t.Helper()
	c := recommend.Candidate{PropertyID: uuid.New(), Region: region, ClusterID: cluster, Ratings: ratings}
	for _, capacity := range capacities {
		c.Rooms = append(c.Rooms, booking.Room{ID: uuid.New(), Capacity: capacity, Price: eur(t, cents)})
	}
	return c
}

func ids(scored []recommend.Scored) []uuid.UUID {
	out := make([]uuid.UUID, len(scored))
	for i, s := range scored {
		out[i] = s.Candidate.PropertyID
	}
	return out
}

func matchIDs(matches []recommend.Match) []uuid.UUID {
	out := make([]uuid.UUID, len(matches))
	for i, m := range matches {
		out[i] = m.Candidate.PropertyID
	}
	return out
}

func flat(v float64) rating.Scores {
	return rating.Scores{v, v, v, v, v, v, v}
}

func TestFilter(t *testing.T) {
	nights := stay(t, "2026-07-01", "2026-07-04")

	small := candidate(t, "Brasov", nil, flat(8), 10000, 2)
	large := candidate(t, "Brasov", nil, flat(8), 10000, 2, 3)
	elsewhere := candidate(t, "Cluj", nil, flat(8), 10000, 4)
	booked := candidate(t, "Brasov", nil, flat(8), 10000, 4)
	booked.Occupancy = []booking.Occupancy{{RoomID: booked.Rooms[0].ID, Stay: stay(t, "2026-07-03", "2026-07-06")}}
	cancelled := candidate(t, "Brasov", nil, flat(8), 10000, 4)
	cancelled.Occupancy = []booking.Occupancy{{RoomID: cancelled.Rooms[0].ID, Stay: nights, Cancelled: true}}
	pricey := candidate(t, "Brasov", nil, flat(8), 50000, 4)

	all := []recommend.Candidate{small, large, elsewhere, booked, cancelled, pricey}

	t.Run("capacity, region and availability", func(t *testing.T) {
		got := recommend.Filter(all, recommend.Criteria{Region: "brasov", Stay: nights, Guests: 4})
		assert.Empty(t, cmp.Diff([]uuid.UUID{large.PropertyID, cancelled.PropertyID, pricey.PropertyID}, matchIDs(got)))

		// capacities [2,3] for 4 guests: both rooms, largest first
		require.Len(t, got[0].Rooms, 2)
		assert.Equal(t, 3, got[0].Rooms[0].Capacity)
		assert.Equal(t, 2, got[0].Rooms[1].Capacity)
		assert.Equal(t, int64(2*10000*3), got[0].Total.Cents())
	})

	t.Run("budget applies to the multi-night total", func(t *testing.T) {
		got := recommend.Filter(all, recommend.Criteria{Stay: nights, Guests: 4, MaxBudgetCents: ptr.Of(int64(60000))})
		assert.Empty(t, cmp.Diff([]uuid.UUID{large.PropertyID, elsewhere.PropertyID, cancelled.PropertyID}, matchIDs(got)))

		got = recommend.Filter(all, recommend.Criteria{Stay: nights, Guests: 4, MaxBudgetCents: ptr.Of(int64(59999))})
		assert.Empty(t, cmp.Diff([]uuid.UUID{elsewhere.PropertyID, cancelled.PropertyID}, matchIDs(got)))
	})

	t.Run("no stay prices a single night and ignores occupancy", func(t *testing.T) {
		got := recommend.Filter([]recommend.Candidate{booked}, recommend.Criteria{Guests: 1})
		require.Len(t, got, 1)
		assert.Equal(t, int64(10000), got[0].Total.Cents())
	})
}

func TestRank(t *testing.T) {
	weights := &rating.Weights{1, 1, 1, 1, 1, 1, 1}

	t.Run("no preferences yields no recommendations", func(t *testing.T) {
		matches := recommend.Filter([]recommend.Candidate{candidate(t, "A", nil, flat(9), 100, 2)}, recommend.Criteria{})
		assert.Empty(t, recommend.Rank(matches, nil, nil, 5))
	})

	t.Run("descending score with stable ties and a limit of five", func(t *testing.T) {
		var cands []recommend.Candidate
		for _, v := range []float64{5, 9, 7, 9, 3, 7, 8} {
			cands = append(cands, candidate(t, "A", nil, flat(v), 100, 2))
		}
		got := recommend.Rank(recommend.Filter(cands, recommend.Criteria{}), weights, nil, 5)

		want := []uuid.UUID{cands[1].PropertyID, cands[3].PropertyID, cands[6].PropertyID, cands[2].PropertyID, cands[5].PropertyID}
		assert.Empty(t, cmp.Diff(want, ids(got)))
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
		}
	})

	t.Run("preference score is the weighted dot product", func(t *testing.T) {
		c := candidate(t, "A", nil, rating.Scores{10, 0, 0, 0, 0, 0, 2}, 100, 2)
		got := recommend.Rank(recommend.Filter([]recommend.Candidate{c}, recommend.Criteria{}), &rating.Weights{3, 9, 9, 9, 9, 0, 5}, nil, 5)
		require.Len(t, got, 1)
		assert.InDelta(t, 40.0, got[0].Preference, 1e-9)
	})

	t.Run("favorite amenity overlap is added to the score", func(t *testing.T) {
		plain := candidate(t, "A", nil, flat(5), 100, 2)
		cosy := candidate(t, "A", nil, flat(5), 100, 2)
		cosy.Amenities = amenity.NewSet(amenity.Balcony, amenity.Garden, amenity.Sofa)
		favs := []recommend.Favorite{
			{PropertyID: uuid.New(), Amenities: amenity.NewSet(amenity.Balcony, amenity.Garden)},
			{PropertyID: uuid.New(), Amenities: amenity.NewSet(amenity.Sofa)},
		}

		got := recommend.Rank(recommend.Filter([]recommend.Candidate{plain, cosy}, recommend.Criteria{}), weights, favs, 5)
		assert.Empty(t, cmp.Diff([]uuid.UUID{cosy.PropertyID, plain.PropertyID}, ids(got)))
		assert.Equal(t, 3, got[0].Affinity)
		assert.InDelta(t, 35.0+3, got[0].Score, 1e-9)
	})

	t.Run("cluster restriction needs enough candidates", func(t *testing.T) {
		one, two := ptr.Of(1), ptr.Of(2)
		favs := []recommend.Favorite{{ClusterID: two}, {ClusterID: one}, {ClusterID: one}}

		var cands []recommend.Candidate
		for range 4 {
			cands = append(cands, candidate(t, "A", one, flat(1), 100, 2))
		}
		cands = append(cands, candidate(t, "A", two, flat(9), 100, 2))

		got := recommend.Rank(recommend.Filter(cands, recommend.Criteria{}), weights, favs, 5)
		assert.Equal(t, cands[4].PropertyID, got[0].Candidate.PropertyID, "four in cluster is not enough, falls back to all")

		cands = append(cands, candidate(t, "A", one, flat(1), 100, 2))
		got = recommend.Rank(recommend.Filter(cands, recommend.Criteria{}), weights, favs, 5)
		require.Len(t, got, 5)
		for _, s := range got {
			assert.Equal(t, 1, *s.Candidate.ClusterID)
		}
	})

	t.Run("cluster tie goes to the first seen", func(t *testing.T) {
		one, two := ptr.Of(1), ptr.Of(2)
		favs := []recommend.Favorite{{ClusterID: two}, {ClusterID: one}}

		var cands []recommend.Candidate
		for range 5 {
			cands = append(cands, candidate(t, "A", two, flat(1), 100, 2))
		}
		cands = append(cands, candidate(t, "A", one, flat(9), 100, 2))

		got := recommend.Rank(recommend.Filter(cands, recommend.Criteria{}), weights, favs, 5)
		for _, s := range got {
			assert.Equal(t, 2, *s.Candidate.ClusterID)
		}
	})

	t.Run("favorites without clusters skip the restriction", func(t *testing.T) {
		cands := []recommend.Candidate{candidate(t, "A", ptr.Of(1), flat(1), 100, 2), candidate(t, "A", nil, flat(2), 100, 2)}
		got := recommend.Rank(recommend.Filter(cands, recommend.Criteria{}), weights, []recommend.Favorite{{}}, 5)
		assert.Len(t, got, 2)
	})
}

func TestPromote(t *testing.T) {
	var cands []recommend.Candidate
	for _, v := range []float64{1, 2, 3, 4} {
		cands = append(cands, candidate(t, "A", nil, flat(v), 100, 2))
	}
	available := recommend.Filter(cands, recommend.Criteria{})
	ranked := recommend.Rank(available, &rating.Weights{1}, nil, 2)

	got := recommend.Promote(available, ranked)
	want := []uuid.UUID{cands[3].PropertyID, cands[2].PropertyID, cands[0].PropertyID, cands[1].PropertyID}
	assert.Empty(t, cmp.Diff(want, matchIDs(got)))
}

func TestClusterFeatures(t *testing.T) {
	rooms := []booking.Room{{Price: eur(t, 10000)}, {Price: eur(t, 20000)}}
	v := recommend.ClusterFeatures(rooms, rating.Scores{1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, []float64{150, 1, 2, 3, 4, 5, 6, 7}, v)
	assert.Len(t, recommend.ClusterFeatures(nil, rating.Scores{}), recommend.ClusterFeatureWidth)
}
