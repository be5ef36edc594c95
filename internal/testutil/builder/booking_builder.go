//go:build unit || integration

package builder

import (
	"time"

	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	GuestID     uuid.UUID
	PropertyID  uuid.UUID
	RoomIDs     []uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	AmountCents int64
	Currency    string
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		GuestID:     uuid.New(),
		PropertyID:  uuid.New(),
		RoomIDs:     []uuid.UUID{uuid.New()},
		CheckIn:     time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		AmountCents: 36000,
		Currency:    "eur",
		Now:         time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}

func (b *BookingBuilder) WithRooms(ids ...uuid.UUID) *BookingBuilder {
	b.RoomIDs = ids
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn, b.CheckOut = checkIn, checkOut
	return b
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		PropertyID: b.PropertyID,
		RoomIDs:    b.RoomIDs,
		CheckIn:    b.CheckIn.Format(time.DateOnly),
		CheckOut:   b.CheckOut.Format(time.DateOnly),
	}
}

func (b *BookingBuilder) BuildReservationView(status string) *queries.ReservationView {
	return &queries.ReservationView{
		ID:           uuid.New(),
		GuestID:      b.GuestID,
		PropertyID:   b.PropertyID,
		PropertyName: "Casa Verde",
		OwnerID:      uuid.New(),
		PaymentID:    uuid.New(),
		RoomIDs:      b.RoomIDs,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       status,
		AmountCents:  b.AmountCents,
		Currency:     b.Currency,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *BookingBuilder) BuildReservationListItem(status string) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           uuid.New(),
		PropertyID:   b.PropertyID,
		PropertyName: "Casa Verde",
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       status,
		AmountCents:  b.AmountCents,
		Currency:     b.Currency,
		CreatedAt:    b.Now,
	}
}

func (b *BookingBuilder) BuildPaymentView(status string) *queries.PaymentView {
	return &queries.PaymentView{
		ID:          uuid.New(),
		GuestID:     b.GuestID,
		IntentID:    "pi_test_123",
		PropertyID:  b.PropertyID,
		RoomIDs:     b.RoomIDs,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		AmountCents: b.AmountCents,
		Currency:    b.Currency,
		Status:      status,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}
