package request

import (
	"staybook/internal/domain/rating"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

// CategoryScores carries one 1-10 score per rating category.
type CategoryScores struct {
	Personal      int `json:"personal" binding:"required,min=1,max=10"`
	Facilities    int `json:"facilities" binding:"required,min=1,max=10"`
	Cleanliness   int `json:"cleanliness" binding:"required,min=1,max=10"`
	Comfort       int `json:"comfort" binding:"required,min=1,max=10"`
	ValueForMoney int `json:"value_for_money" binding:"required,min=1,max=10"`
	Location      int `json:"location" binding:"required,min=1,max=10"`
	Wifi          int `json:"wifi" binding:"required,min=1,max=10"`
}

func (s CategoryScores) values() [rating.CategoryCount]int {
	return [rating.CategoryCount]int{
		rating.Personal:      s.Personal,
		rating.Facilities:    s.Facilities,
		rating.Cleanliness:   s.Cleanliness,
		rating.Comfort:       s.Comfort,
		rating.ValueForMoney: s.ValueForMoney,
		rating.Location:      s.Location,
		rating.Wifi:          s.Wifi,
	}
}

type CreateReviewRequest struct {
	PropertyID    uuid.UUID      `json:"property_id" binding:"required"`
	ReservationID uuid.UUID      `json:"reservation_id" binding:"required"`
	Scores        CategoryScores `json:"scores"`
	Comment       string         `json:"comment" binding:"max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		PropertyID:    r.PropertyID,
		ReservationID: r.ReservationID,
		Scores:        r.Scores.values(),
		Comment:       r.Comment,
	}
}

// UpdateReviewRequest replaces every score and the comment.
type UpdateReviewRequest struct {
	Scores  CategoryScores `json:"scores"`
	Comment string         `json:"comment" binding:"max=1000"`
}

func (r *UpdateReviewRequest) ToCommand() commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{Scores: r.Scores.values(), Comment: r.Comment}
}
