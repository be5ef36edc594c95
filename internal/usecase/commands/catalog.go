package commands

//go:generate mockgen -source=catalog.go -destination=../../testutil/mock/commands/catalog_mock.go -package=commandsmock

import (
	"context"

	"staybook/internal/domain/property"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound = errs.New("property not found")
	ErrPropertyNotOwned = errs.New("property not owned by user")
	ErrListingForbidden = errs.New("role may not manage listings")
	ErrHasUpcomingStays = errs.New("confirmed upcoming stays exist")
	ErrRoomChanged      = errs.New("room was changed concurrently, reload and retry")
)

type RoomResult struct {
	RoomID      uuid.UUID
	PriceRating string
}

type CatalogCommands interface {
	CreateProperty(ctx context.Context, details property.Details, actorID uuid.UUID, role user.Role) (uuid.UUID, error)
	UpdateProperty(ctx context.Context, propertyID uuid.UUID, patch property.DetailsPatch, actorID uuid.UUID) error
	DeleteProperty(ctx context.Context, propertyID uuid.UUID, actorID uuid.UUID) error
	CreateRoom(ctx context.Context, propertyID uuid.UUID, spec property.RoomSpec, actorID uuid.UUID) (*RoomResult, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, patch property.RoomPatch, actorID uuid.UUID) (*RoomResult, error)
	DeleteRoom(ctx context.Context, roomID uuid.UUID, actorID uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow        shared.UnitOfWork
	classifier *RoomClassifier
	clock      clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, classifier *RoomClassifier, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, classifier: classifier, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateProperty(ctx context.Context, details property.Details, actorID uuid.UUID, role user.Role) (uuid.UUID, error) {
	if !role.CanManageListings() {
		return uuid.Nil, errs.Forbidden(ErrListingForbidden)
	}
	p, err := property.NewProperty(actorID, details, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Properties().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *catalogUseCaseImpl) UpdateProperty(ctx context.Context, propertyID uuid.UUID, patch property.DetailsPatch, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := ownedProperty(ctx, tx.Reads(), propertyID, actorID)
		if err != nil {
			return err
		}
		if err := p.Update(patch, uc.clock.Now()); err != nil {
			return errs.Validation(err)
		}
		return tx.Properties().Update(ctx, tx.DB(), p)
	})
}

// DeleteProperty cascades to rooms, reviews and favorites. Properties with
// confirmed stays that have not ended are kept.
func (uc *catalogUseCaseImpl) DeleteProperty(ctx context.Context, propertyID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := ownedProperty(ctx, tx.Reads(), propertyID, actorID); err != nil {
			return err
		}
		busy, err := tx.Reservations().HasUpcomingStays(ctx, tx.DB(), propertyID, nil, uc.clock.Now())
		if err != nil {
			return err
		}
		if busy {
			return errs.Conflict(ErrHasUpcomingStays)
		}
		return tx.Properties().Delete(ctx, tx.DB(), propertyID)
	})
}

// CreateRoom classifies the room before opening the transaction; a model
// failure rejects the whole request.
func (uc *catalogUseCaseImpl) CreateRoom(ctx context.Context, propertyID uuid.UUID, spec property.RoomSpec, actorID uuid.UUID) (*RoomResult, error) {
	reads := uc.uow.CommandReads()
	if _, err := ownedProperty(ctx, reads, propertyID, actorID); err != nil {
		return nil, err
	}
	room, err := property.NewRoom(propertyID, spec, uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}
	pc, err := reads.PricingContext(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := uc.classifier.Classify(ctx, room, pc); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, tx.DB(), room)
	})
	if err != nil {
		return nil, err
	}
	return &RoomResult{RoomID: room.ID(), PriceRating: room.PriceRating().String()}, nil
}

func (uc *catalogUseCaseImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, patch property.RoomPatch, actorID uuid.UUID) (*RoomResult, error) {
	reads := uc.uow.CommandReads()
	room, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrRoomNotFound)
		}
		return nil, err
	}
	if _, err := ownedProperty(ctx, reads, room.PropertyID(), actorID); err != nil {
		return nil, err
	}

	seen := room.UpdatedAt()
	changed, err := room.Update(patch, uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}
	if changed {
		pc, err := reads.PricingContext(ctx, room.PropertyID())
		if err != nil {
			return nil, err
		}
		if err := uc.classifier.Classify(ctx, room, pc); err != nil {
			return nil, err
		}
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Rooms().Update(ctx, tx.DB(), room, seen)
		})
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, errs.Conflict(ErrRoomChanged)
			}
			if errs.Is(err, errs.ErrNotFound) {
				return nil, errs.NotFound(ErrRoomNotFound)
			}
			return nil, err
		}
	}
	return &RoomResult{RoomID: room.ID(), PriceRating: room.PriceRating().String()}, nil
}

func (uc *catalogUseCaseImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Reads().RoomByID(ctx, roomID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return errs.NotFound(ErrRoomNotFound)
			}
			return err
		}
		if _, err := ownedProperty(ctx, tx.Reads(), room.PropertyID(), actorID); err != nil {
			return err
		}
		id := room.ID()
		busy, err := tx.Reservations().HasUpcomingStays(ctx, tx.DB(), room.PropertyID(), &id, uc.clock.Now())
		if err != nil {
			return err
		}
		if busy {
			return errs.Conflict(ErrHasUpcomingStays)
		}
		return tx.Rooms().Delete(ctx, tx.DB(), roomID)
	})
}

func ownedProperty(ctx context.Context, reads shared.CommandReads, propertyID, actorID uuid.UUID) (*property.Property, error) {
	p, err := reads.PropertyByID(ctx, propertyID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound(ErrPropertyNotFound)
		}
		return nil, err
	}
	if !p.IsOwnedBy(actorID) {
		return nil, errs.Forbidden(ErrPropertyNotOwned)
	}
	return p, nil
}
