package commands

//go:generate mockgen -source=booking.go -destination=../../testutil/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotInProperty   = errs.New("room does not belong to the property")
	ErrRoomNotFound        = errs.New("room not found")
	ErrPaymentNotFound     = errs.New("payment not found")
	ErrPaymentNotOwned     = errs.New("payment not owned by user")
	ErrPaymentFailed       = errs.New("payment failed: the rooms were booked by another guest")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrRefundNotSucceeded  = errs.New("gateway did not confirm the refund")
)

type CheckoutRequest struct {
	PropertyID uuid.UUID
	RoomIDs    []uuid.UUID
	Stay       booking.DateRange
}

type CheckoutResult struct {
	PaymentID    uuid.UUID
	IntentID     string
	ClientSecret string
	Amount       booking.Money
	Nights       int
}

type ConfirmResult struct {
	PaymentID     uuid.UUID
	Status        payment.Status
	ReservationID *uuid.UUID
}

type BookingCommands interface {
	Checkout(ctx context.Context, req CheckoutRequest, guestID uuid.UUID) (*CheckoutResult, error)
	Confirm(ctx context.Context, paymentID uuid.UUID, guestID uuid.UUID) (*ConfirmResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	Cancel(ctx context.Context, reservationID uuid.UUID, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	verifier WebhookVerifier
	deduper  WebhookDeduper
	factory  *reservation.Factory
	clock    clock.Clock
	logger   *slog.Logger
	cfg      config.BookingConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	verifier WebhookVerifier,
	deduper WebhookDeduper,
	factory *reservation.Factory,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		verifier: verifier,
		deduper:  deduper,
		factory:  factory,
		clock:    clk,
		logger:   logger,
		cfg:      cfg.Booking,
	}
}

func (uc *bookingUseCaseImpl) Checkout(ctx context.Context, req CheckoutRequest, guestID uuid.UUID) (*CheckoutResult, error) {
	key, err := booking.NewKey(guestID, req.PropertyID, req.RoomIDs, req.Stay)
	if err != nil {
		return nil, errs.Validation(err)
	}

	rooms, err := uc.bookableRooms(ctx, key)
	if err != nil {
		return nil, err
	}

	occupancy, err := uc.uow.CommandReads().Occupancy(ctx, key.RoomIDs(), key.Stay())
	if err != nil {
		return nil, err
	}
	if free := booking.FreeRooms(rooms, key.Stay(), occupancy); len(free) != len(rooms) {
		return nil, errs.Conflict(booking.ErrRoomsUnavailable)
	}

	amount, err := booking.Quote(rooms, key.Stay())
	if err != nil {
		return nil, errs.Validation(err)
	}

	gwCtx, cancel := uc.gatewayContext(ctx)
	intent, err := uc.gateway.CreateIntent(gwCtx, amount, key.Metadata())
	cancel()
	if err != nil {
		return nil, errs.Gateway(errs.Wrap(err, "create payment intent"))
	}

	p, err := payment.NewPayment(intent.ID, amount, key, uc.clock.Now())
	if err != nil {
		return nil, errs.Gateway(errs.Wrap(err, "unusable payment intent"))
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		// The intent exists at the gateway; a later webhook for it ends up in reconciliation.
		uc.logger.Error("payment intent opened but not persisted",
			slog.String("intent_id", intent.ID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return &CheckoutResult{
		PaymentID:    p.ID(),
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Nights:       key.Stay().Nights(),
	}, nil
}

// bookableRooms loads the key's rooms in key order and checks they all
// belong to the key's property.
func (uc *bookingUseCaseImpl) bookableRooms(ctx context.Context, key booking.Key) ([]booking.Room, error) {
	ids := key.RoomIDs()
	loaded, err := uc.uow.CommandReads().RoomsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]booking.Room, len(loaded))
	for _, r := range loaded {
		if r.PropertyID() != key.PropertyID() {
			return nil, errs.Validation(ErrRoomNotInProperty)
		}
		byID[r.ID()] = r.Bookable()
	}
	rooms := make([]booking.Room, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return nil, errs.NotFound(errs.Wrapf(ErrRoomNotFound, "room %s", id))
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func (uc *bookingUseCaseImpl) gatewayContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, uc.cfg.GatewayTimeout)
}

func resultFrom(p *payment.Payment) *ConfirmResult {
	return &ConfirmResult{PaymentID: p.ID(), Status: p.Status(), ReservationID: p.ReservationID()}
}

func (uc *bookingUseCaseImpl) now() time.Time { return uc.clock.Now() }
