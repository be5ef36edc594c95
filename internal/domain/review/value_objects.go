package review

import (
	"strings"

	"staybook/internal/domain/rating"
)

const (
	MaxCommentLength = 1000
	MinScore         = 1
	MaxScore         = 10
)

// Scores are one guest's marks per rating category.
type Scores struct {
	values [rating.CategoryCount]int
}

func NewScores(values [rating.CategoryCount]int) (Scores, error) {
	for _, v := range values {
		if v < MinScore || v > MaxScore {
			return Scores{}, ErrInvalidScore
		}
	}
	return Scores{values: values}, nil
}

func (s Scores) Values() [rating.CategoryCount]int { return s.values }

func (s Scores) Of(c rating.Category) int { return s.values[c] }

type Comment struct {
	text string
}

// NewComment trims s; an empty comment is allowed.
func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
