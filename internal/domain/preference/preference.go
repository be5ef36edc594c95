package preference

import (
	"fmt"
	"time"

	"staybook/internal/domain/rating"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/patch"

	"github.com/google/uuid"
)

const DefaultCeiling = 44

var (
	ErrNegativeWeight = errs.New("preference weights cannot be negative")
	ErrMissingUser    = errs.New("preferences must belong to a user")
)

// CeilingExceededError reports the offending total back to the guest.
type CeilingExceededError struct {
	Total   int
	Ceiling int
}

func (e *CeilingExceededError) Error() string {
	return fmt.Sprintf("total score of preferences must be less than or equal to %d, yours is %d", e.Ceiling, e.Total)
}

// Patch carries a partial update, one optional weight per category.
type Patch struct {
	Personal      *int
	Facilities    *int
	Cleanliness   *int
	Comfort       *int
	ValueForMoney *int
	Location      *int
	Wifi          *int
}

func (p Patch) fields() [rating.CategoryCount]*int {
	return [rating.CategoryCount]*int{p.Personal, p.Facilities, p.Cleanliness, p.Comfort, p.ValueForMoney, p.Location, p.Wifi}
}

type Preferences struct {
	userID    uuid.UUID
	weights   rating.Weights
	updatedAt time.Time
}

func New(userID uuid.UUID, w rating.Weights, ceiling int, now time.Time) (*Preferences, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if err := Validate(w, ceiling); err != nil {
		return nil, err
	}
	return &Preferences{userID: userID, weights: w, updatedAt: now}, nil
}

func Reconstruct(userID uuid.UUID, w rating.Weights, updatedAt time.Time) *Preferences {
	return &Preferences{userID: userID, weights: w, updatedAt: updatedAt}
}

// Update merges p over the stored weights before checking the ceiling, so a
// partial update is judged on the total the guest would end up with.
func (pr *Preferences) Update(p Patch, ceiling int, now time.Time) error {
	var next rating.Weights
	for i, v := range p.fields() {
		next[i] = patch.Coalesce(v, pr.weights[i])
	}
	if err := Validate(next, ceiling); err != nil {
		return err
	}
	pr.weights = next
	pr.updatedAt = now
	return nil
}

func Validate(w rating.Weights, ceiling int) error {
	for _, v := range w {
		if v < 0 {
			return ErrNegativeWeight
		}
	}
	// Weights are non-negative here, so Total only saturates upwards.
	if total := w.Total(); total > ceiling {
		return &CeilingExceededError{Total: total, Ceiling: ceiling}
	}
	return nil
}

func (pr *Preferences) UserID() uuid.UUID       { return pr.userID }
func (pr *Preferences) Weights() rating.Weights { return pr.weights }
func (pr *Preferences) UpdatedAt() time.Time    { return pr.updatedAt }
