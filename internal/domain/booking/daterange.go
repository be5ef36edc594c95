package booking

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// DateRange is a half-open [checkIn, checkOut) stay measured in whole days.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !out.After(in) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check-in %q", ErrInvalidDateRange, checkIn)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check-out %q", ErrInvalidDateRange, checkOut)
	}
	return NewDateRange(in, out)
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }
func (r DateRange) IsZero() bool        { return r.checkIn.IsZero() && r.checkOut.IsZero() }

func (r DateRange) Nights() int {
	return DaysBetween(r.checkIn, r.checkOut)
}

// Overlaps is the single overlap predicate used for every availability decision.
// Back-to-back stays sharing a checkout/checkin date do not overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return o.checkIn.Before(r.checkOut) && o.checkOut.After(r.checkIn)
}

func (r DateRange) String() string {
	return "[" + r.checkIn.Format(dateLayout) + "," + r.checkOut.Format(dateLayout) + ")"
}

// DaysBetween counts calendar days from a to b, ignoring the clock part.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
