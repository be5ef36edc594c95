package pricing

import (
	"errors"
	"math"
)

var ErrInvalidTolerance = errors.New("price tolerance must be a finite, non-negative number")

type Label string

const (
	LabelVeryGood  Label = "very good price"
	LabelGood      Label = "good price"
	LabelFair      Label = "fair price"
	LabelIncreased Label = "increased price"
	LabelHigh      Label = "high price"
)

func (l Label) String() string { return string(l) }

func (l Label) IsValid() bool {
	switch l {
	case LabelVeryGood, LabelGood, LabelFair, LabelIncreased, LabelHigh:
		return true
	default:
		return false
	}
}

// Tolerance is the half-width h of the fair band, taken from the trained
// model's mean absolute error.
type Tolerance struct {
	h float64
}

func NewTolerance(h float64) (Tolerance, error) {
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return Tolerance{}, ErrInvalidTolerance
	}
	return Tolerance{h: h}, nil
}

func (t Tolerance) Value() float64 { return t.h }

// Classify bands the listed price around the predicted one:
//
//	actual <  p-2h          very good
//	p-2h <= actual <  p-h   good
//	p-h  <= actual <= p+h   fair
//	p+h  <  actual <= p+2h  increased
//	actual >  p+2h          high
func Classify(predicted, actual float64, tol Tolerance) Label {
	h := tol.h
	switch {
	case actual < predicted-2*h:
		return LabelVeryGood
	case actual < predicted-h:
		return LabelGood
	case actual <= predicted+h:
		return LabelFair
	case actual <= predicted+2*h:
		return LabelIncreased
	default:
		return LabelHigh
	}
}
