package favorite

import (
	"time"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMissingReference = errs.New("favorite requires a user and a property")

// Favorite bookmarks a property for a guest.
type Favorite struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}

func New(userID, propertyID uuid.UUID, now time.Time) (Favorite, error) {
	if userID == uuid.Nil || propertyID == uuid.Nil {
		return Favorite{}, ErrMissingReference
	}
	return Favorite{UserID: userID, PropertyID: propertyID, CreatedAt: now}, nil
}
