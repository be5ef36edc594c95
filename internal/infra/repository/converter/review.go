package converter

import (
	"staybook/internal/domain/rating"
	"staybook/internal/domain/review"
)

// ReviewArgs are the seven category scores in column order.
func ReviewArgs(r *review.Review) []any {
	values := r.Scores().Values()
	args := make([]any, rating.CategoryCount)
	for i, v := range values {
		args[i] = int16(v)
	}
	return args
}
