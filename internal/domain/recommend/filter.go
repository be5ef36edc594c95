package recommend

import (
	"strings"

	"staybook/internal/domain/amenity"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/rating"

	"github.com/google/uuid"
)

// Candidate is a read-only snapshot of one property as the search sees it.
type Candidate struct {
	PropertyID uuid.UUID
	Region     string
	ClusterID  *int
	Ratings    rating.Scores
	Amenities  amenity.Set
	Rooms      []booking.Room
	Occupancy  []booking.Occupancy
}

// Criteria are the hard filters of a search. A zero Stay prices one night
// and skips the availability check.
type Criteria struct {
	Region         string
	MaxBudgetCents *int64
	Stay           booking.DateRange
	Guests         int
}

// Match is a candidate that passed every filter, with the rooms the guest
// would book and what they would pay.
type Match struct {
	Candidate Candidate
	Rooms     []booking.Room
	Total     booking.Money
}

// Filter keeps, in input order, the candidates that can host the requested
// guests within budget for the stay.
func Filter(candidates []Candidate, c Criteria) []Match {
	out := make([]Match, 0, len(candidates))
	for _, cand := range candidates {
		if m, ok := match(cand, c); ok {
			out = append(out, m)
		}
	}
	return out
}

func match(cand Candidate, c Criteria) (Match, bool) {
	if c.Region != "" && !strings.EqualFold(strings.TrimSpace(cand.Region), strings.TrimSpace(c.Region)) {
		return Match{}, false
	}

	free := cand.Rooms
	if !c.Stay.IsZero() {
		free = booking.FreeRooms(cand.Rooms, c.Stay, cand.Occupancy)
	}
	packed, err := booking.PackRooms(free, c.Guests)
	if err != nil {
		return Match{}, false
	}

	total, err := price(packed, c.Stay)
	if err != nil {
		return Match{}, false
	}
	if c.MaxBudgetCents != nil && total.Cents() > *c.MaxBudgetCents {
		return Match{}, false
	}
	return Match{Candidate: cand, Rooms: packed, Total: total}, true
}

func price(rooms []booking.Room, stay booking.DateRange) (booking.Money, error) {
	if !stay.IsZero() {
		return booking.Quote(rooms, stay)
	}
	if len(rooms) == 0 {
		return booking.Money{}, booking.ErrEmptyRoomSet
	}
	total := rooms[0].Price
	for _, r := range rooms[1:] {
		var err error
		if total, err = total.Add(r.Price); err != nil {
			return booking.Money{}, err
		}
	}
	return total, nil
}
