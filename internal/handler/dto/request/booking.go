package request

import (
	"staybook/internal/domain/booking"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Dates are calendar days in YYYY-MM-DD form.
type CheckoutRequest struct {
	PropertyID uuid.UUID   `json:"property_id" binding:"required"`
	RoomIDs    []uuid.UUID `json:"room_ids" binding:"required,min=1,dive,required"`
	CheckIn    string      `json:"check_in" binding:"required"`
	CheckOut   string      `json:"check_out" binding:"required"`
}

func (r *CheckoutRequest) ToCommand() (commands.CheckoutRequest, error) {
	stay, err := booking.ParseDateRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.CheckoutRequest{}, err
	}
	return commands.CheckoutRequest{PropertyID: r.PropertyID, RoomIDs: r.RoomIDs, Stay: stay}, nil
}

// SearchQuery binds the search query string. Without dates every property of
// the region is listed and only the guest and budget filters apply.
type SearchQuery struct {
	Region         string `form:"region"`
	CheckIn        string `form:"check_in"`
	CheckOut       string `form:"check_out"`
	Guests         int    `form:"guests" binding:"required,min=1"`
	MaxBudgetCents *int64 `form:"max_budget_cents" binding:"omitempty,min=0"`
}

func (q *SearchQuery) ToQuery() (queries.SearchRequest, error) {
	req := queries.SearchRequest{
		Region:         q.Region,
		Guests:         q.Guests,
		MaxBudgetCents: q.MaxBudgetCents,
	}
	if q.CheckIn == "" && q.CheckOut == "" {
		return req, nil
	}
	stay, err := booking.ParseDateRange(q.CheckIn, q.CheckOut)
	if err != nil {
		return queries.SearchRequest{}, err
	}
	req.Stay = stay
	return req, nil
}
