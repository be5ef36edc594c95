package recommend

import (
	"slices"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/rating"

	"github.com/google/uuid"
)

const DefaultLimit = 5

// Favorite is the part of a favorited property that feeds affinity scoring.
type Favorite struct {
	PropertyID uuid.UUID
	ClusterID  *int
	Amenities  amenity.Set
}

type Scored struct {
	Match
	Preference float64
	Affinity   int
	Score      float64
}

// Rank orders matches for a guest and returns at most limit of them.
// A nil weights vector means the guest stated no preferences and yields no
// recommendations.
func Rank(matches []Match, weights *rating.Weights, favorites []Favorite, limit int) []Scored {
	if weights == nil || len(matches) == 0 {
		return []Scored{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	scored := make([]Scored, len(matches))
	for i, m := range matches {
		s := Scored{Match: m, Preference: m.Candidate.Ratings.Dot(*weights)}
		for _, f := range favorites {
			s.Affinity += f.Amenities.Overlap(m.Candidate.Amenities)
		}
		s.Score = s.Preference + float64(s.Affinity)
		scored[i] = s
	}

	if len(favorites) > 0 {
		if cluster, ok := modeCluster(favorites); ok {
			restricted := make([]Scored, 0, len(scored))
			for _, s := range scored {
				if id := s.Candidate.ClusterID; id != nil && *id == cluster {
					restricted = append(restricted, s)
				}
			}
			if len(restricted) >= limit {
				scored = restricted
			}
		}
	}

	slices.SortStableFunc(scored, func(a, b Scored) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// modeCluster returns the most common cluster among favorites. Ties go to
// the cluster seen first.
func modeCluster(favorites []Favorite) (int, bool) {
	counts := make(map[int]int)
	order := make([]int, 0, len(favorites))
	for _, f := range favorites {
		if f.ClusterID == nil {
			continue
		}
		if counts[*f.ClusterID] == 0 {
			order = append(order, *f.ClusterID)
		}
		counts[*f.ClusterID]++
	}
	if len(order) == 0 {
		return 0, false
	}
	best := order[0]
	for _, id := range order[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best, true
}

// Promote returns the available matches with the recommended properties
// moved to the front in ranking order.
func Promote(available []Match, ranked []Scored) []Match {
	out := make([]Match, 0, len(available))
	seen := make(map[uuid.UUID]struct{}, len(ranked))
	for _, s := range ranked {
		out = append(out, s.Match)
		seen[s.Candidate.PropertyID] = struct{}{}
	}
	for _, m := range available {
		if _, ok := seen[m.Candidate.PropertyID]; !ok {
			out = append(out, m)
		}
	}
	return out
}
