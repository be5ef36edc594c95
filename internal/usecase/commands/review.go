package commands

//go:generate mockgen -source=review.go -destination=../../testutil/mock/commands/review_mock.go -package=commandsmock

import (
	"context"

	"staybook/internal/domain/rating"
	"staybook/internal/domain/reservation"
	domreview "staybook/internal/domain/review"
	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned      = errs.New("review not owned by user")
	ErrReviewNotFoundWrite = errs.New("review not found")
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

type CreateReviewRequest struct {
	PropertyID    uuid.UUID
	ReservationID uuid.UUID
	Scores        [rating.CategoryCount]int
	Comment       string
}

type UpdateReviewRequest struct {
	Scores  [rating.CategoryCount]int
	Comment string
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	scores, comment, err := parseReview(req.Scores, req.Comment)
	if err != nil {
		return nil, err
	}

	services := &domreview.Services{
		Clock:              uc.clock,
		EligibilityChecker: &stayEligibility{ctx: ctx, reads: uc.uow.CommandReads()},
	}
	rev, err := domreview.NewReview(services, userID, req.PropertyID, req.ReservationID, scores, comment)
	if err != nil {
		if errs.Is(err, domreview.ErrReservationNotEligible) {
			return nil, errs.Forbidden(err)
		}
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if errs.Is(derr, errs.ErrConflict) {
				return errs.Conflict(domreview.ErrReviewAlreadyExists)
			}
			return derr
		}
		createdID = id
		return tx.RatingStats().RecalcPropertyRatingStats(ctx, tx.DB(), req.PropertyID)
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	scores, comment, err := parseReview(req.Scores, req.Comment)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := reviewSnapshot(ctx, tx.Reads(), reviewID)
		if derr != nil {
			return derr
		}
		if snap.UserID != actorID {
			return errs.Forbidden(ErrReviewNotOwned)
		}

		prev, derr := domreview.NewScores(snap.Scores)
		if derr != nil {
			return derr
		}
		prevComment, _ := domreview.NewComment(snap.Comment)
		agg := domreview.ReconstructReview(snap.ID, snap.UserID, snap.PropertyID, snap.ReservationID, prev, prevComment, snap.CreatedAt, snap.CreatedAt)
		agg.Revise(scores, comment, uc.clock.Now())
		if derr = tx.Reviews().Update(ctx, tx.DB(), agg); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcPropertyRatingStats(ctx, tx.DB(), snap.PropertyID)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := reviewSnapshot(ctx, tx.Reads(), reviewID)
		if derr != nil {
			return derr
		}
		if actorRole != user.RoleAdmin && snap.UserID != actorID {
			return errs.Forbidden(ErrReviewNotOwned)
		}
		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcPropertyRatingStats(ctx, tx.DB(), snap.PropertyID)
	})
}

func parseReview(values [rating.CategoryCount]int, text string) (domreview.Scores, domreview.Comment, error) {
	scores, err := domreview.NewScores(values)
	if err != nil {
		return domreview.Scores{}, domreview.Comment{}, errs.Validation(err)
	}
	comment, err := domreview.NewComment(text)
	if err != nil {
		return domreview.Scores{}, domreview.Comment{}, errs.Validation(err)
	}
	return scores, comment, nil
}

func reviewSnapshot(ctx context.Context, reads shared.CommandReads, reviewID uuid.UUID) (*shared.ReviewSnapshot, error) {
	snap, err := reads.ReviewByID(ctx, reviewID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrReviewNotFoundWrite)
		}
		return nil, err
	}
	return snap, nil
}

// stayEligibility resolves the reviewed reservation for the domain check.
type stayEligibility struct {
	ctx   context.Context
	reads shared.CommandReads
}

func (e *stayEligibility) CanPostReview(input domreview.EligibilityInput) error {
	res, err := e.reads.ReservationByID(e.ctx, input.ReservationID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return domreview.ErrReservationNotEligible
		}
		return err
	}
	return domreview.CheckStay(domreview.Stay{
		GuestID:    res.GuestID(),
		PropertyID: res.PropertyID(),
		Confirmed:  res.Status() == reservation.StatusConfirmed,
		CheckOut:   res.Stay().CheckOut(),
	}, input)
}
