package review

import (
	"time"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidScore           = errs.New("category scores must be between 1 and 10")
	ErrCommentTooLong         = errs.New("comment exceeds maximum length")
	ErrReservationNotEligible = errs.New("reservation is not eligible for review")
	ErrReviewAlreadyExists    = errs.New("review already exists for this reservation")
)

type Review struct {
	id            uuid.UUID
	userID        uuid.UUID
	propertyID    uuid.UUID
	reservationID uuid.UUID
	scores        Scores
	comment       Comment
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(services *Services, userID, propertyID, reservationID uuid.UUID, scores Scores, comment Comment) (*Review, error) {
	now := services.Clock.Now()
	if services.EligibilityChecker != nil {
		err := services.EligibilityChecker.CanPostReview(EligibilityInput{
			ReservationID: reservationID,
			UserID:        userID,
			PropertyID:    propertyID,
			Now:           now,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Review{
		id:            uuid.New(),
		userID:        userID,
		propertyID:    propertyID,
		reservationID: reservationID,
		scores:        scores,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReview(id, userID, propertyID, reservationID uuid.UUID, scores Scores, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		userID:        userID,
		propertyID:    propertyID,
		reservationID: reservationID,
		scores:        scores,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) Revise(scores Scores, comment Comment, now time.Time) {
	r.scores = scores
	r.comment = comment
	r.updatedAt = now
}

func (r *Review) IsWrittenBy(userID uuid.UUID) bool { return r.userID == userID }

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) UserID() uuid.UUID        { return r.userID }
func (r *Review) PropertyID() uuid.UUID    { return r.propertyID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Scores() Scores           { return r.scores }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
