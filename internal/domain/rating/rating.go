package rating

import (
	"errors"
	"math"
)

var ErrUnknownCategory = errors.New("unknown rating category")

// Category is one of the guest-satisfaction dimensions collected by reviews
// and weighted by user preferences.
type Category int

const (
	Personal Category = iota
	Facilities
	Cleanliness
	Comfort
	ValueForMoney
	Location
	Wifi

	CategoryCount = int(Wifi) + 1
)

var categoryNames = [CategoryCount]string{
	"personal",
	"facilities",
	"cleanliness",
	"comfort",
	"value_for_money",
	"location",
	"wifi",
}

func (c Category) String() string {
	if c < 0 || int(c) >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

func Categories() []Category {
	out := make([]Category, CategoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Scores are per-category averages (or a single review's marks).
type Scores [CategoryCount]float64

// Weights are a guest's stated importance per category.
type Weights [CategoryCount]int

// Total saturates at the int bounds instead of wrapping.
func (w Weights) Total() int {
	total := 0
	for _, v := range w {
		switch {
		case v > 0 && total > math.MaxInt-v:
			total = math.MaxInt
		case v < 0 && total < math.MinInt-v:
			total = math.MinInt
		default:
			total += v
		}
	}
	return total
}

func (w Weights) IsZero() bool {
	return w == Weights{}
}

// Dot is the preference score of a property for a guest.
func (s Scores) Dot(w Weights) float64 {
	var sum float64
	for i := range s {
		sum += s[i] * float64(w[i])
	}
	return sum
}
