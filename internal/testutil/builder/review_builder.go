//go:build unit || integration

package builder

import (
	"time"

	"staybook/internal/domain/review"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	ReservationID uuid.UUID
	Scores        [7]int
	Comment       string
	Now           time.Time
	Eligibility   review.EligibilityChecker
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		PropertyID:    uuid.New(),
		ReservationID: uuid.New(),
		Scores:        [7]int{9, 8, 10, 9, 7, 10, 6},
		Comment:       "Quiet room, great breakfast.",
		Now:           time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) WithScore(i, v int) *ReviewBuilder {
	r.Scores[i] = v
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithUserID(id uuid.UUID) *ReviewBuilder {
	r.UserID = id
	return r
}

func (r *ReviewBuilder) WithPropertyID(id uuid.UUID) *ReviewBuilder {
	r.PropertyID = id
	return r
}

func (r *ReviewBuilder) WithEligibility(checker review.EligibilityChecker) *ReviewBuilder {
	r.Eligibility = checker
	return r
}

// With applies an arbitrary mutation, for table-driven cases.
func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	if mutate != nil {
		mutate(r)
	}
	return r
}

// BuildDomain runs the same validation a new review goes through.
func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	scores, err := review.NewScores(r.Scores)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	services := &review.Services{Clock: clock.NewMockClock(r.Now), EligibilityChecker: r.Eligibility}
	return review.NewReview(services, r.UserID, r.PropertyID, r.ReservationID, scores, comment)
}

func (r *ReviewBuilder) scores() reqdto.CategoryScores {
	return reqdto.CategoryScores{
		Personal:      r.Scores[0],
		Facilities:    r.Scores[1],
		Cleanliness:   r.Scores[2],
		Comfort:       r.Scores[3],
		ValueForMoney: r.Scores[4],
		Location:      r.Scores[5],
		Wifi:          r.Scores[6],
	}
}

func (r *ReviewBuilder) viewScores() queries.ReviewScores {
	s := r.Scores
	return queries.ReviewScores{
		Personal:      int16(s[0]),
		Facilities:    int16(s[1]),
		Cleanliness:   int16(s[2]),
		Comfort:       int16(s[3]),
		ValueForMoney: int16(s[4]),
		Location:      int16(s[5]),
		Wifi:          int16(s[6]),
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		PropertyID:    r.PropertyID,
		ReservationID: r.ReservationID,
		Scores:        r.scores(),
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{Scores: r.scores(), Comment: r.Comment}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            r.ID,
		UserID:        r.UserID,
		UserEmail:     "guest@example.com",
		PropertyID:    r.PropertyID,
		PropertyName:  "Casa Verde",
		ReservationID: r.ReservationID,
		Scores:        r.viewScores(),
		Comment:       r.Comment,
		CreatedAt:     r.Now,
		UpdatedAt:     r.Now,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:        r.ID,
		UserEmail: "guest@example.com",
		Scores:    r.viewScores(),
		Comment:   r.Comment,
		CreatedAt: r.Now,
	}
}
